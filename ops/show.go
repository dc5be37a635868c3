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
 * show.go - Implementa l'operació SHOW. Mostra per pantala la
 *           informació de la imatge DD-001.
 */

package ops

import (
  "fmt"
  "io"
  "os"

  "github.com/adriagipas/dd001conv/imgs"
  "github.com/adriagipas/dd001conv/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func ShowImage(file io.Writer, file_name string) error {

  img,err := imgs.OpenFloppy ( file_name )
  if err != nil { return err }

  fmt.Fprintln ( file, "" )
  fmt.Fprintf ( file, "  \"%s\"\n", file_name )
  fmt.Fprintln ( file, "" )
  if err := img.PrintInfo ( file, "    " ); err != nil {
    return err
  }
  fmt.Fprintln ( file, "" )

  return nil

} // end ShowImage


func Show ( args *utils.Args ) error {
  return ShowImage ( os.Stdout, args.SrcPath () )
} // end Show
