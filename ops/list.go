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
 *  list.go - Implementa l'operació LIST. Mostra per pantalla els
 *            fitxers del disc DD-001 amb les adreces de càrrega i,
 *            si en tenen, d'inici.
 *
 */

package ops

import (
  "fmt"
  "io"
  "os"

  "github.com/adriagipas/dd001conv/imgs"
  "github.com/adriagipas/dd001conv/startaddr"
  "github.com/adriagipas/dd001conv/utils"
)


/************/
/* OPERACIÓ */
/************/

func ListImage(

  file      io.Writer,
  file_name string,
  table     *startaddr.Table,

) error {

  img,err := imgs.OpenFloppy ( file_name )
  if err != nil { return err }

  // Entrades en l'ordre del directori
  it,err := img.Root ().Begin ()
  for ; err == nil && !it.End (); err= it.Next () {
    if it.Type () != imgs.DIRECTORY_ITER_TYPE_FILE { continue }
    if start,ok := table.Lookup ( it.GetName () ); ok {
      fmt.Fprintf ( file, "[%04X]  ", start )
    } else {
      fmt.Fprint ( file, "        " )
    }
    if err := it.List ( file ); err != nil {
      return err
    }
  }

  return err

} // end ListImage


func List ( args *utils.Args ) error {

  table := startaddr.Default ()
  if args.Table != "" {
    var err error
    if table,err= startaddr.Load ( args.Table ); err != nil {
      return err
    }
  }

  return ListImage ( os.Stdout, args.SrcPath (), table )

} // end List
