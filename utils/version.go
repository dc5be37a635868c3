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
 *  version.go - Versió del programa.
 *
 */

package utils;

import (
  "fmt"
  "io"
  "os"
)

const VERSION = "0.2.0"

// Disc que sap convertir.
const VERSION_TARGET = "DD-001 boot floppy (FAT12 720K) to D81"

func WriteVersion(w io.Writer) {

  P := func(s string) { fmt.Fprintln ( w, s ) }

  P("dd001conv "+VERSION+" ("+VERSION_TARGET+")")
  P("Packs runnable files with exomizer or tscrunch, writes with c1541.")
  P("Copyright (C) 2026 Adrià Giménez Pastor")
  P("License GPLv3+: GNU GPL version 3 or later "+
    "<https://gnu.org/licenses/gpl.html>.")
  P("This is free software: you are free to change and redistribute it.")
  P("There is NO WARRANTY, to the extent permitted by law.")
  P("")

} // end WriteVersion


func PrintVersion() {
  WriteVersion ( os.Stdout )
} // end PrintVersion
