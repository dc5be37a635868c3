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
 *  tooltest.go - Simulador de c1541 i exomizer per a les proves.
 *
 */

// Package tooltest implements a tools.Runner that simulates c1541 and
// exomizer in memory.
package tooltest

import (
  "context"
  "fmt"
  "os"
  "sort"
  "strings"

  "github.com/adriagipas/dd001conv/tools"
)


type Call struct {
  Name string
  Args []string
}


// Fitxer escrit en una imatge simulada.
type Entry struct {
  Name   string // Nom en el D81
  Source string // Camí local d'on s'ha copiat
  Data   []byte
}


type Simulator struct {

  Calls  []Call
  Images map[string][]Entry

  // Si no és nil fa fallar la crida (status, stderr).
  Fail func(name string, args []string) (int,string)

}


func NewSimulator() *Simulator {
  return &Simulator{ Images: make ( map[string][]Entry ) }
}


func (self *Simulator) Run(

  ctx  context.Context,
  name string,
  args ...string,

) (*tools.Result,error) {

  self.Calls= append ( self.Calls, Call{Name: name, Args: args} )
  res := tools.Result{ Cmd: tools.CommandLine ( name, args... ) }
  if self.Fail != nil {
    if status,stderr := self.Fail ( name, args ); status != 0 || stderr != "" {
      res.Status,res.Stderr= status,[]byte(stderr)
      return &res,nil
    }
  }

  var err error
  switch name {
  case "c1541":
    err= self.c1541 ( &res, args )
  case "exomizer":
    err= self.exomizer ( &res, args )
  default:
    return nil,fmt.Errorf ( "%s: %w", name, tools.ErrNotFound )
  }

  return &res,err

} // end Run


func (self *Simulator) c1541(res *tools.Result, args []string) error {

  switch {
  case len(args) == 5 && args[0] == "-format":
    if err := os.WriteFile ( args[3], []byte("D81"), 0666 ); err != nil {
      return err
    }
    self.Images[args[3]]= []Entry{}

  case len(args) == 6 && args[0] == "-attach" && args[3] == "-write":
    img := args[1]
    if _,ok := self.Images[img]; !ok {
      res.Stderr= []byte("ERROR: cannot attach "+img)
      return nil
    }
    for _,e := range self.Images[img] {
      if e.Name == args[5] {
        res.Stderr= []byte("ERROR: file exists: "+args[5])
        return nil
      }
    }
    data,err := os.ReadFile ( args[4] )
    if err != nil {
      res.Status,res.Stderr= 1,[]byte(err.Error ())
      return nil
    }
    self.Images[img]= append ( self.Images[img],
      Entry{Name: args[5], Source: args[4], Data: data} )

  case len(args) == 4 && args[0] == "-attach" && args[3] == "-list":
    var b strings.Builder
    fmt.Fprintf ( &b, "0 \"%-16s\" 01 3d\n", "dd-001" )
    for _,e := range self.Images[args[1]] {
      fmt.Fprintf ( &b, "%-4d \"%s\" prg\n", (len(e.Data)+253)/254, e.Name )
    }
    b.WriteString ( "3160 blocks free.\n" )
    res.Stdout= []byte(b.String ())

  default:
    res.Status,res.Stderr= 1,[]byte("unsupported c1541 call")
  }

  return nil

} // end c1541


// exomizer sfx 0xSSSS -t64 INPUT -o OUTPUT. La sortida és una marca
// amb l'adreça d'inici seguida de l'entrada.
func (self *Simulator) exomizer(res *tools.Result, args []string) error {

  if len(args) != 6 || args[0] != "sfx" || args[4] != "-o" {
    res.Status,res.Stderr= 1,[]byte("unsupported exomizer call")
    return nil
  }
  data,err := os.ReadFile ( args[3] )
  if err != nil {
    res.Status,res.Stderr= 1,[]byte(err.Error ())
    return nil
  }
  out := append ( []byte("SFX "+args[1]+" "), data... )

  return os.WriteFile ( args[5], out, 0666 )

} // end exomizer


// Noms de la imatge ordenats.
func (self *Simulator) Names(img string) []string {
  ret := []string{}
  for _,e := range self.Images[img] {
    ret= append ( ret, e.Name )
  }
  sort.Strings ( ret )
  return ret
} // end Names


func (self *Simulator) Entry(img string, name string) (Entry,bool) {
  for _,e := range self.Images[img] {
    if e.Name == name {
      return e,true
    }
  }
  return Entry{},false
} // end Entry
