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
 *  floppy.go - Disquets DD-001 de 3.5" i 720K. Llistat de fitxers
 *              amb l'adreça de càrrega i lectura de fitxers.
 *
 */

package imgs

import (
  "encoding/binary"
  "errors"
  "fmt"
  "io"
  "os"
  "strings"
)


/*************/
/* CONSTANTS */
/*************/

const FLOPPY_720K_SIZE = 737280

// Geometria 3.5" DD
const FLOPPY_720K_BYTES_PER_SEC = 512
const FLOPPY_720K_SECS_PER_CLU  = 2
const FLOPPY_720K_NUM_FAT       = 2
const FLOPPY_720K_ROOT_ENTRIES  = 112
const FLOPPY_720K_SECS_PER_FAT  = 3
const FLOPPY_720K_SECS_PER_TRK  = 9
const FLOPPY_720K_HEADS         = 2
const FLOPPY_720K_MEDIA         = 0xF9


/**********/
/* ERRORS */
/**********/

type ImageOpenError struct {
  Path string
  Err  error
}

func (self *ImageOpenError) Error() string {
  return fmt.Sprintf ( "unable to open DD-001 image '%s': %s",
    self.Path, self.Err )
}

func (self *ImageOpenError) Unwrap() error { return self.Err }


type FileReadError struct {
  Name string
  Err  error
}

func (self *FileReadError) Error() string {
  return fmt.Sprintf ( "unable to read '%s': %s", self.Name, self.Err )
}

func (self *FileReadError) Unwrap() error { return self.Err }


var ErrFileNotFound = errors.New ( "file not found" )


/*************/
/* DIR ENTRY */
/*************/

type DirEntry struct {
  Name        string
  Size        int64
  LoadAddress uint16
}


/**********/
/* FLOPPY */
/**********/

type Floppy struct {

  path string
  img  Image
  root Directory

}


// Obri una imatge DD-001. Ha de ser FAT12 i de 720K.
func OpenFloppy(path string) (*Floppy,error) {

  fail := func(err error) (*Floppy,error) {
    return nil,&ImageOpenError{Path: path, Err: err}
  }

  // Comprovacions
  ftype,err := Detect ( path )
  if err != nil { return fail ( err ) }
  if ftype != TYPE_FAT12 {
    return fail ( errors.New ( "not a FAT12 floppy image" ) )
  }
  info,err := os.Stat ( path )
  if err != nil { return fail ( err ) }
  if info.Size () != FLOPPY_720K_SIZE {
    return fail ( fmt.Errorf ( "expected a 720K image (%d bytes), got %d"+
      " bytes", FLOPPY_720K_SIZE, info.Size () ) )
  }

  // Obri
  img,err := newFAT12 ( path )
  if err != nil { return fail ( err ) }
  root,err := img.GetRootDirectory ()
  if err != nil { return fail ( err ) }

  ret := Floppy{
    path: path,
    img: img,
    root: root,
  }

  return &ret,nil

} // end OpenFloppy


func (self *Floppy) Path() string { return self.path }


func (self *Floppy) Root() Directory { return self.root }


func (self *Floppy) PrintInfo(file io.Writer, prefix string) error {
  return self.img.PrintInfo ( file, prefix )
}


// Torna les entrades en l'ordre del directori. Sols existeix el
// directori arrel.
func (self *Floppy) ListFiles(path string) ([]DirEntry,error) {

  if path != "/" && path != "" {
    return nil,fmt.Errorf ( "DD-001 images have no subdirectories: %s", path )
  }

  ret := []DirEntry{}
  i,err := self.root.Begin ()
  for ; err == nil && !i.End (); err= i.Next () {
    if i.Type () != DIRECTORY_ITER_TYPE_FILE { continue }
    ret= append ( ret, DirEntry{
      Name: i.GetName (),
      Size: i.GetSize (),
      LoadAddress: i.GetLoadAddress (),
    })
  }
  if err != nil { return nil,err }

  return ret,nil

} // end ListFiles


// Llig un fitxer sencer. Si with_load_address és cert les dades
// comencen amb l'adreça de càrrega en little-endian.
func (self *Floppy) ReadFile(

  name              string,
  with_load_address bool,

) ([]byte,error) {

  fail := func(err error) ([]byte,error) {
    return nil,&FileReadError{Name: name, Err: err}
  }

  // Cerca
  it,err := FindFile ( self.root, name )
  if err != nil { return fail ( err ) }
  if it == nil { return fail ( ErrFileNotFound ) }

  // Llig
  f,err := it.GetFileReader ()
  if err != nil { return fail ( err ) }
  defer f.Close ()
  data,err := io.ReadAll ( f )
  if err != nil { return fail ( err ) }
  if int64(len(data)) != it.GetSize () {
    return fail ( fmt.Errorf ( "read %d bytes, expected %d",
      len(data), it.GetSize () ) )
  }

  if !with_load_address {
    return data,nil
  }
  ret := make ( []byte, 2, len(data)+2 )
  binary.LittleEndian.PutUint16 ( ret, it.GetLoadAddress () )

  return append ( ret, data... ),nil

} // end ReadFile


/**********/
/* FORMAT */
/**********/

// Crea una imatge DD-001 buida de 720K. Si el fitxer existeix el
// sobreescriu.
func FormatFloppy720(path string, label string) error {

  data := make ( []byte, FLOPPY_720K_SIZE )
  br := data[:FAT12_BR_SIZE]
  le := binary.LittleEndian

  // Boot Record
  br[0],br[1],br[2]= 0xeb,0x3c,0x90
  copy ( br[3:3+8], "DD-001  " )
  le.PutUint16 ( br[0xb:], FLOPPY_720K_BYTES_PER_SEC )
  br[0xd]= FLOPPY_720K_SECS_PER_CLU
  le.PutUint16 ( br[0xe:], 1 )
  br[0x10]= FLOPPY_720K_NUM_FAT
  le.PutUint16 ( br[0x11:], FLOPPY_720K_ROOT_ENTRIES )
  le.PutUint16 ( br[0x13:], FLOPPY_720K_SIZE/FLOPPY_720K_BYTES_PER_SEC )
  br[0x15]= FLOPPY_720K_MEDIA
  le.PutUint16 ( br[0x16:], FLOPPY_720K_SECS_PER_FAT )
  le.PutUint16 ( br[0x18:], FLOPPY_720K_SECS_PER_TRK )
  le.PutUint16 ( br[0x1a:], FLOPPY_720K_HEADS )
  br[0x26]= 0x29
  le.PutUint32 ( br[0x27:], 0x00DD0001 )
  copy ( br[0x2b:0x2b+11], fmt.Sprintf ( "%-11s",
    strings.ToUpper ( label ) )[:11] )
  copy ( br[0x36:0x36+8], "FAT12   " )
  br[0x1fe],br[0x1ff]= 0x55,0xaa

  // FATs
  fat_size := FLOPPY_720K_SECS_PER_FAT*FLOPPY_720K_BYTES_PER_SEC
  for i := 0; i < FLOPPY_720K_NUM_FAT; i++ {
    fat := data[FAT12_BR_SIZE+i*fat_size:]
    fat[0],fat[1],fat[2]= FLOPPY_720K_MEDIA,0xff,0xff
  }

  return os.WriteFile ( path, data, 0666 )

} // end FormatFloppy720
