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
 *  startaddr.go - Adreces d'inici dels fitxers executables del disc
 *                 d'arrencada del DD-001. Copiades del fitxer MULT.ASC.
 *
 */

package startaddr

import (
  "fmt"
  "sort"

  "github.com/BurntSushi/toml"
)


/*********/
/* TAULA */
/*********/

type Table struct {
  addrs map[string]uint16
}


func Default() *Table {

  ret := Table{
    addrs: map[string]uint16{
      "GUTZ.EXE"    : 0x0800,
      "FIRE.PRG"    : 0x1000,
      "MOUSE0.EXE"  : 0xC000,
      "NINJA.EXE"   : 0x0880,
      "PYJAMAS.PRG" : 0x0b09,
      "QUACK.PRG"   : 0x445C,
      "FROSTY.PRG"  : 0x0b09,

      "EQUINOX.PRG"  : 0x0b09,
      "DISKMON.EXE"  : 0x1000,
      "DISKASC.EXE"  : 0x1000,
      "DISKHEX.EXE"  : 0x1000,
      "DISKCOPY.EXE" : 0x0800,
      "FILECOPY.EXE" : 0x0800,
      "BROWSER.EXE"  : 0x1000,
      "FORMAT.EXE"   : 0x0800,
      // Aquest està arreglat en el firmware
      "BOOT.EXE" : 0x1000,
    },
  }

  return &ret

} // end Default


// Format del fitxer:
//
//   [start]
//   "BOOT.EXE" = 0x1000
type tomlTable struct {
  Start map[string]int64 `toml:"start"`
}


func Load(file_name string) (*Table,error) {

  var raw tomlTable
  if _,err := toml.DecodeFile ( file_name, &raw ); err != nil {
    return nil,fmt.Errorf ( "unable to read start addresses from '%s': %s",
      file_name, err )
  }
  if len(raw.Start) == 0 {
    return nil,fmt.Errorf ( "no [start] entries in '%s'", file_name )
  }

  ret := Table{ addrs: make ( map[string]uint16, len(raw.Start) ) }
  for name,addr := range raw.Start {
    if addr < 0 || addr > 0xFFFF {
      return nil,fmt.Errorf ( "start address of '%s' out of range: %d",
        name, addr )
    }
    ret.addrs[name]= uint16(addr)
  }

  return &ret,nil

} // end Load


// Distingeix majúscules i minúscules.
func (self *Table) Lookup(name string) (uint16,bool) {
  addr,ok := self.addrs[name]
  return addr,ok
} // end Lookup


func (self *Table) Len() int { return len(self.addrs) }


// Noms ordenats.
func (self *Table) Names() []string {
  ret := make ( []string, 0, len(self.addrs) )
  for name := range self.addrs {
    ret= append ( ret, name )
  }
  sort.Strings ( ret )
  return ret
} // end Names


// Torna els noms de la taula que no estan en NAMES.
func (self *Table) Missing(names []string) []string {

  present := make ( map[string]bool, len(names) )
  for _,name := range names {
    present[name]= true
  }
  ret := []string{}
  for _,name := range self.Names () {
    if !present[name] {
      ret= append ( ret, name )
    }
  }

  return ret

} // end Missing
