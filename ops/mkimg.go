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
 *  mkimg.go - Implementa l'operació MKIMG. Crea un disc DD-001 a
 *             partir d'una carpeta amb fitxers que comencen amb
 *             l'adreça de càrrega (com files_with_loadaddr).
 *
 */

package ops

import (
  "encoding/binary"
  "errors"
  "fmt"
  "io"

  log "github.com/sirupsen/logrus"

  "github.com/adriagipas/dd001conv/imgs"
  "github.com/adriagipas/dd001conv/utils"
)


/************/
/* OPERACIÓ */
/************/

func MakeImage(img_name string, folder string, label string) (int,error) {

  // Origen
  src,err := imgs.NewImage ( folder )
  if err != nil { return 0,err }
  src_dir,err := src.GetRootDirectory ()
  if err != nil { return 0,err }

  // Destí
  if err := imgs.FormatFloppy720 ( img_name, label ); err != nil {
    return 0,err
  }
  dst,err := imgs.NewImage ( img_name )
  if err != nil { return 0,err }
  dst_dir,err := dst.GetRootDirectory ()
  if err != nil { return 0,err }

  // Copia
  n := 0
  i,err := src_dir.Begin ()
  for ; err == nil && !i.End (); err= i.Next () {
    if i.Type () != imgs.DIRECTORY_ITER_TYPE_FILE { continue }
    if err := copyFileToImage ( i, dst_dir ); err != nil {
      return n,fmt.Errorf ( "An error occurred while copying '%s': %s",
        i.GetName (), err )
    }
    n++
  }

  return n,err

} // end MakeImage


func copyFileToImage(file imgs.DirectoryIter, dst_dir imgs.Directory) error {

  name := file.GetName ()
  log.WithField ( "file", name ).Debugf ( "Copying %s ...", name )

  src_f,err := file.GetFileReader ()
  if err != nil { return err }
  defer src_f.Close ()

  // Adreça de càrrega. MULT.ASC no en porta.
  var load_addr uint16
  if name != FILE_WITHOUT_LOAD_ADDR {
    var header [2]byte
    if _,err := io.ReadFull ( src_f, header[:] ); err != nil {
      return errors.New ( "file too short to carry a load address" )
    }
    load_addr= binary.LittleEndian.Uint16 ( header[:] )
  }

  dst_f,err := dst_dir.GetFileWriter ( name )
  if err != nil { return err }
  if setter,ok := dst_f.(imgs.LoadAddressSetter); ok {
    setter.SetLoadAddress ( load_addr )
  }
  if err := copyFiles ( src_f, dst_f ); err != nil {
    dst_f.Close ()
    return err
  }

  return dst_f.Close ()

} // end copyFileToImage


const COPY_BUF_SIZE = 1024

func copyFiles(src imgs.FileReader, dst imgs.FileWriter) error {

  var mem [COPY_BUF_SIZE]byte
  _,err := io.CopyBuffer ( struct{ io.Writer }{dst},
    struct{ io.Reader }{src}, mem[:] )

  return err

} // end copyFiles


func MkImg ( args *utils.Args ) error {

  n,err := MakeImage ( args.OpArgs[0], args.OpArgs[1], args.Label )
  if err != nil { return err }
  fmt.Println ( n, "files in total" )

  return nil

} // end MkImg
