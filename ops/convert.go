/*
 * Copyright 2026 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/dd001conv.
 *
 * adriagipas/dd001conv is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/dd001conv is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/dd001conv.  If not, see <https://www.gnu.org/licenses/>.
 */
/*
 *  convert.go - Implementa les operacions CONVERT i EXTRACT. Extrau
 *               els fitxers del disc DD-001, els comprimeix si són
 *               executables i els escriu en una imatge D81.
 *
 */

package ops

import (
  "context"
  "errors"
  "fmt"
  "os"
  "os/signal"
  "path/filepath"
  "sort"

  log "github.com/sirupsen/logrus"

  "github.com/adriagipas/dd001conv/d81"
  "github.com/adriagipas/dd001conv/imgs"
  "github.com/adriagipas/dd001conv/packer"
  "github.com/adriagipas/dd001conv/startaddr"
  "github.com/adriagipas/dd001conv/tools"
  "github.com/adriagipas/dd001conv/utils"
)


/*************/
/* CONSTANTS */
/*************/

// Carpetes dins de la carpeta de treball
const DIR_DATA     = "files_data"
const DIR_LOADADDR = "files_with_loadaddr"
const DIR_RUNNABLE = "files_with_loadaddr_runnable"

// El firmware original marca malament aquest fitxer: no porta adreça
// de càrrega. Es copia sense capçalera.
const FILE_WITHOUT_LOAD_ADDR = "MULT.ASC"


/**********/
/* CONFIG */
/**********/

type ConvertConfig struct {

  SrcImage string // Imatge DD-001
  Folder   string // Carpeta de treball
  DstImage string // Imatge D81
  Label    string
  DiskId   string

  Table   *startaddr.Table
  Packer  packer.Packer // nil en mode extract
  Builder *d81.Builder  // nil en mode extract

  KeepGoing bool // Continua si falla la compressió
  Verify    bool // Comprova el catàleg del D81

}


// Construeix la configuració a partir dels arguments.
func NewConvertConfig(args *utils.Args, runner tools.Runner) (*ConvertConfig,error) {

  ret := ConvertConfig{
    SrcImage: args.SrcPath (),
    Folder: args.Folder,
    DstImage: args.DstPath (),
    Label: args.Label,
    DiskId: args.DiskId,
    KeepGoing: args.KeepGoing,
    Verify: args.Verify,
  }

  // Taula
  if args.Table == "" {
    ret.Table= startaddr.Default ()
  } else {
    table,err := startaddr.Load ( args.Table )
    if err != nil { return nil,err }
    ret.Table= table
  }

  // Eines
  if args.Op == utils.OP_CONVERT {
    p,err := packer.New ( args.Packer, args.Exomizer, runner )
    if err != nil { return nil,err }
    ret.Packer= p
    ret.Builder= d81.NewBuilder ( args.C1541, args.Drive, runner )
  }

  return &ret,nil

} // end NewConvertConfig


/**********/
/* REPORT */
/**********/

type Report struct {
  Files    int      // Fitxers processats
  Runnable int      // Comprimits i escrits
  Direct   int      // Escrits directament
  Skipped  []string // No s'han pogut comprimir (sols amb KeepGoing)
}


/*************/
/* CONVERTER */
/*************/

type converter struct {

  cfg      *ConvertConfig
  src      *imgs.Floppy
  data     imgs.Directory
  loadaddr imgs.Directory
  runnable imgs.Directory

}


func (self *converter) extractOnly() bool {
  return self.cfg.Builder == nil
}


func (self *converter) stage(

  dir  imgs.Directory,
  name string,
  data []byte,

) (string,error) {

  f,err := dir.GetFileWriter ( name )
  if err != nil { return "",err }
  if _,err := f.Write ( data ); err != nil {
    f.Close ()
    return "",err
  }
  if err := f.Close (); err != nil { return "",err }

  return imgs.FolderPath ( dir, name )

} // end stage


// Processa un fitxer seguint l'ordre del directori.
func (self *converter) convertFile(

  ctx    context.Context,
  e      imgs.DirEntry,
  report *Report,

) error {

  flog := log.WithField ( "file", e.Name )
  flog.Infof ( "%s, %d @ %04x", e.Name, e.Size, e.LoadAddress )

  // Còpia amb adreça de càrrega
  with_load_address := e.Name != FILE_WITHOUT_LOAD_ADDR
  data,err := self.src.ReadFile ( e.Name, with_load_address )
  if err != nil { return err }
  staged,err := self.stage ( self.loadaddr, e.Name, data )
  if err != nil {
    return fmt.Errorf ( "unable to stage '%s': %s", e.Name, err )
  }

  // Còpia de les dades
  data,err= self.src.ReadFile ( e.Name, false )
  if err != nil { return err }
  if _,err := self.stage ( self.data, e.Name, data ); err != nil {
    return fmt.Errorf ( "unable to stage '%s': %s", e.Name, err )
  }

  if self.extractOnly () { return nil }

  // Escriu en el D81
  dst_name := d81.Name ( e.Name )
  start,runnable := self.cfg.Table.Lookup ( e.Name )
  if runnable {

    flog.WithField ( "start", fmt.Sprintf ( "%04x", start ) ).
      Infof ( "%s: %04x", self.cfg.Packer.Name (), start )
    output,err := imgs.FolderPath ( self.runnable, dst_name )
    if err != nil { return err }
    err= self.cfg.Packer.Pack ( ctx, staged, start, output )
    if err != nil {
      var perr *packer.CompressionError
      if self.cfg.KeepGoing && errors.As ( err, &perr ) {
        flog.Warnf ( "skipping '%s': %s", e.Name, err )
        report.Skipped= append ( report.Skipped, e.Name )
        return nil
      }
      return err
    }
    if err := self.cfg.Builder.Write ( ctx, self.cfg.DstImage,
      output, dst_name ); err != nil {
      return err
    }
    report.Runnable++

  } else {
    if err := self.cfg.Builder.Write ( ctx, self.cfg.DstImage,
      staged, dst_name ); err != nil {
      return err
    }
    report.Direct++
  }

  return nil

} // end convertFile


// Comprova que el D81 té exactament un fitxer per cada fitxer escrit.
func (self *converter) verify(ctx context.Context, expected []string) error {

  names,err := self.cfg.Builder.List ( ctx, self.cfg.DstImage )
  if err != nil { return err }

  got := make ( map[string]int )
  for _,name := range names {
    got[name]++
  }
  missing := []string{}
  for _,name := range expected {
    if got[name] != 1 {
      missing= append ( missing, name )
    }
    delete ( got, name )
  }
  extra := []string{}
  for name := range got {
    extra= append ( extra, name )
  }
  sort.Strings ( extra )
  if len(missing) > 0 || len(extra) > 0 {
    return fmt.Errorf ( "D81 catalog mismatch in '%s': missing %v,"+
      " unexpected %v", self.cfg.DstImage, missing, extra )
  }

  return nil

} // end verify


/************/
/* OPERACIÓ */
/************/

func RunConvert(ctx context.Context, cfg *ConvertConfig) (*Report,error) {

  report := Report{}

  // Obri imatge origen
  src,err := imgs.OpenFloppy ( cfg.SrcImage )
  if err != nil { return nil,err }
  entries,err := src.ListFiles ( "/" )
  if err != nil { return nil,err }

  // Carpetes
  conv := converter{
    cfg: cfg,
    src: src,
  }
  for _,tmp := range []struct{
    dir  *imgs.Directory
    name string
  }{
    { &conv.data, DIR_DATA },
    { &conv.loadaddr, DIR_LOADADDR },
    { &conv.runnable, DIR_RUNNABLE },
  } {
    *tmp.dir,err= imgs.OpenFolder ( filepath.Join ( cfg.Folder, tmp.name ) )
    if err != nil { return nil,err }
  }

  // Comprova la taula
  names := make ( []string, len(entries) )
  for i,e := range entries {
    names[i]= e.Name
  }
  for _,name := range cfg.Table.Missing ( names ) {
    utils.Warning ( "start address table entry '%s' not found in '%s'",
      name, cfg.SrcImage )
  }

  // Crea el D81 abans de res
  if !conv.extractOnly () {
    if err := cfg.Builder.Format ( ctx, cfg.DstImage,
      cfg.Label, cfg.DiskId ); err != nil {
      return nil,err
    }
  }

  // Processa
  written := []string{}
  for _,e := range entries {
    report.Files++
    nskipped := len(report.Skipped)
    if err := conv.convertFile ( ctx, e, &report ); err != nil {
      return &report,err
    }
    if len(report.Skipped) == nskipped {
      written= append ( written, d81.Name ( e.Name ) )
    }
  }

  // Comprova
  if !conv.extractOnly () && cfg.Verify {
    if err := conv.verify ( ctx, written ); err != nil {
      return &report,err
    }
  }

  return &report,nil

} // end RunConvert


func Convert(args *utils.Args) error {

  cfg,err := NewConvertConfig ( args, tools.ExecRunner{} )
  if err != nil { return err }

  ctx,stop := signal.NotifyContext ( context.Background (), os.Interrupt )
  defer stop ()

  report,err := RunConvert ( ctx, cfg )
  if report != nil {
    fmt.Println ( report.Files, "files in total" )
    if len(report.Skipped) > 0 {
      utils.Warning ( "%d files could not be packed: %v",
        len(report.Skipped), report.Skipped )
    }
  }

  return err

} // end Convert
