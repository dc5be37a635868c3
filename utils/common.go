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
 *  common.go - Funcions bàsiques.
 *
 */

package utils;

import (
  "errors"
  "fmt"
  "os"
  "strconv"

  log "github.com/sirupsen/logrus"
)

/************/
/* FUNCIONS */
/************/

func NumBytesToStr(num_bytes uint64) string {
  if num_bytes > 1024*1024 { // M
    val := float64(num_bytes)/(1024*1024)
    return strconv.FormatFloat ( val, 'f', 1, 32 ) + "M"
  } else if num_bytes > 1024 { // K
    val := float64(num_bytes)/1024
    return strconv.FormatFloat ( val, 'f', 1, 32 ) + "K"
  } else {
    return strconv.FormatUint ( num_bytes, 10 )
  }
} // end NumBytesToStr


// Comprova que el segment [offset,offset+length) cap dins de
// [f_begin,f_begin+f_length).
func checkSegment(

  op       string,
  f_begin  int64,
  f_length int64,
  length   int64,
  offset   int64,

) error {

  end := f_begin + f_length
  if offset < f_begin || offset >= end {
    return fmt.Errorf ( "error while %s bytes: offset (%d) is out"+
      " of bounds (offset:%d, length:%d)",
      op, offset, f_begin, f_length )
  }
  if offset + length > end {
    return fmt.Errorf ( "error while %s bytes: segment "+
      "(offset:%d, length:%d) is out of bounds (offset:%d, length:%d)",
      op, offset, length, f_begin, f_length )
  }

  return nil

} // end checkSegment


// Llig bytes d'un fitxer fent comprovacions
func ReadBytes(

  f        *os.File,
  f_begin  int64,
  f_length int64,
  buf      []byte,
  offset   int64,

) error {

  err := checkSegment ( "reading", f_begin, f_length, int64(len(buf)), offset )
  if err != nil { return err }

  nbytes,err := f.ReadAt ( buf, offset )
  if err != nil { return err }
  if nbytes != len(buf) {
    return errors.New("Unexpected error occurred while reading bytes")
  }

  return nil

} // ReadBytes


// Escriu bytes en un fitxer fent comprovacions
func WriteBytes(

  f        *os.File,
  f_begin  int64,
  f_length int64,
  buf      []byte,
  offset   int64,

) error {

  err := checkSegment ( "writing", f_begin, f_length, int64(len(buf)), offset )
  if err != nil { return err }

  nbytes,err := f.WriteAt ( buf, offset )
  if err != nil { return err }
  if nbytes != len(buf) {
    return errors.New("Unexpected error occurred while writing bytes")
  }

  return nil

} // WriteBytes


// Configura el log. En mode verbose es mostren també els missatges
// de depuració (crides a eines externes).
func InitLog(verbose bool) {

  log.SetOutput ( os.Stderr )
  log.SetFormatter ( &log.TextFormatter{
    DisableTimestamp: true,
    DisableLevelTruncation: true,
  })
  if verbose {
    log.SetLevel ( log.DebugLevel )
  } else {
    log.SetLevel ( log.InfoLevel )
  }

} // end InitLog


func Warning(format string, args ...any) {
  log.Warnf ( format, args... )
}
