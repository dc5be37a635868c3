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
 *  detect.go - Funció per a detectar el tipus d'una image.
 *
 */

package imgs

import (
  "encoding/binary"
  "fmt"
  "os"
)

/*********/
/* TIPUS */
/*********/

const TYPE_UNK          = 0
const TYPE_FAT12        = 2
const TYPE_LOCAL_FOLDER = 4


/************/
/* FUNCIONS */
/************/

const HEADER_SIZE = 512

func Detect(file_name string) (int,error) {

  // Primer prova si és una carpeta local
  info,err := os.Stat ( file_name )
  if err != nil { return -1,err }
  if info.IsDir () {
    return TYPE_LOCAL_FOLDER,nil
  }

  // Prova fitxers de blocs 512
  return detect_h512 ( file_name, info.Size () )

} // end Detect


func detect_h512(file_name string, nbytes int64) (int,error) {

  if nbytes < HEADER_SIZE {
    return -1,fmt.Errorf ( "'%s' is too small: %d B", file_name, nbytes )
  }

  // Capçalera
  f,err := os.Open ( file_name )
  if err != nil { return -1,err }
  var mem [HEADER_SIZE]byte
  header := mem[:]
  n,err := f.Read ( header )
  f.Close ()
  if err != nil { return -1,err }
  if n != HEADER_SIZE {
    return -1,fmt.Errorf ( "Unexpected error while reading header from '%s'",
      file_name )
  }

  if detect_FAT12 ( header, nbytes ) > 0 {
    return TYPE_FAT12,nil
  }

  return TYPE_UNK,nil

} // end detect_h512


// Torna una puntuació, -1 si no pot ser FAT12.
func detect_FAT12(header []byte, nbytes int64) int {

  ret := 0

  // Signature
  if binary.LittleEndian.Uint16 ( header[0x1fe:] ) != 0xaa55 {
    return -1
  } else { ret++ }

  // Signature 2
  if tmp := header[0x26]; tmp == 0x28 || tmp == 0x29 {
    ret++
  }

  // Grandària sector
  sec_size := int64(binary.LittleEndian.Uint16 ( header[0xb:] ))
  if sec_size == 0 || nbytes%sec_size != 0 {
    return -1
  } else { ret++ }

  // Sectors en el volum
  sectors := int64(binary.LittleEndian.Uint16 ( header[0x13:] ))
  if sectors == 0 || sectors*sec_size != nbytes {
    return -1
  } else { ret++ }

  // Nombre de clusters
  sectors_clu := int64(header[0xd])
  if sectors_clu == 0 || sectors/sectors_clu >= 4085 {
    return -1
  } else { ret++ }

  // Identificador FAT (no sempre està)
  if string(header[0x36:0x36+5]) == "FAT12" {
    ret+= 10
  }

  return ret

} // end detect_FAT12
