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
 *  image.go - Manipulació dels fitxers imatge.
 *
 */

package imgs;

import (
  "fmt"
  "io"
)


/*********/
/* IMAGE */
/*********/

type Image interface {

  // Imprimeix la informació de la imatge en el fitxer
  // especificat. Cada línia s'imprimeix amb el prefix indicat.
  PrintInfo(file io.Writer, prefix string) error

  // Torna el directori arrel del dispositiu.
  GetRootDirectory() (Directory,error)

}

// Retorna la Imatge associada al fitxer expecificat. Si tot va bé
// error és nil.
func NewImage(file_name string) (Image,error) {

  // Obté tipus
  ftype,err := Detect ( file_name )
  if err != nil { return nil,err }

  // Crea imatge
  switch ftype {

  case TYPE_LOCAL_FOLDER:
    return newLocalFolder ( file_name )

  case TYPE_FAT12:
    return newFAT12 ( file_name )

  default:
    return nil,fmt.Errorf ( "Unable to detect the image type for file '%s'",
      file_name)
  }

} // end NewImage


/***************/
/* FILE READER */
/***************/

type FileReader interface {

  // Llig en el buffer. Torna el nombre de bytes llegits. Quan aplega
  // al final torna 0 i io.EOF.
  Read(buf []byte) (int,error)

  // Tanca el fitxer.
  Close() error

}


/***************/
/* FILE WRITER */
/***************/

type FileWriter interface {

  // Escriu el buffer. Torna el nombre de bytes escrits .
  Write(buf []byte) (int,error)

  // Tanca el fitxer
  Close() error

}

// Els FileWriter de les imatges DD-001 també guarden l'adreça de
// càrrega.
type LoadAddressSetter interface {
  SetLoadAddress(addr uint16)
}


/*************/
/* DIRECTORY */
/*************/

type Directory interface {

  // Torna un iterador a la primera entrada en l'ordre intern
  Begin() (DirectoryIter,error)

  // Torna un un FileWriter. Si el fitxer no existeix intenta
  // crear-lo, si existeix el trunca.
  GetFileWriter(name string) (FileWriter,error)

}


/******************/
/* DIRECTORY ITER */
/******************/

const DIRECTORY_ITER_TYPE_FILE    = 0
const DIRECTORY_ITER_TYPE_DIR     = 1
const DIRECTORY_ITER_TYPE_SPECIAL = 3

type DirectoryIter interface {

  // Torna cert si el nom proporcionat és compatible amb el nom que
  // busquem.
  CompareToName(name string) bool

  // Indica final de fitxer.
  End() bool

  // Torna un FileReader del fitxer actual. Intentar cridar a aquest
  // mètode quan no és un fitxer torna un error.
  GetFileReader() (FileReader,error)

  // Torna el nom de l'entrada.
  GetName() string

  // Grandària en bytes.
  GetSize() int64

  // Adreça de càrrega. En les carpetes locals sempre és 0.
  GetLoadAddress() uint16

  // Imprimeix én el fitxer indicat la línea que s'ha de veure per
  // pantalla d'eixe fitxer quan s'executa el comandament ls
  List(file io.Writer) error

  // Avança a la següent entrada
  Next() error

  // Retorna el tipus
  Type() int

}


/*************/
/* FIND FILE */
/*************/

// Busca un fitxer en el directori. Torna nil si no el troba.
func FindFile(dir Directory, name string) (DirectoryIter,error) {

  i,err := dir.Begin ()
  for ; err == nil && !i.End (); err= i.Next () {
    if i.Type () == DIRECTORY_ITER_TYPE_FILE && i.CompareToName ( name ) {
      return i,nil
    }
  }

  return nil,err

} // end FindFile
