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
 *  d81.go - Creació de la imatge D81 amb c1541 (VICE).
 *
 */

package d81

import (
  "context"
  "errors"
  "fmt"
  "os"
  "regexp"
  "strconv"
  "strings"

  "golang.org/x/text/cases"
  "golang.org/x/text/language"

  "github.com/adriagipas/dd001conv/tools"
)


/**********/
/* ERRORS */
/**********/

type FormatError struct {
  Path string
  Err  error
}

func (self *FormatError) Error() string {
  return fmt.Sprintf ( "unable to format D81 image '%s': %s", self.Path, self.Err )
}

func (self *FormatError) Unwrap() error { return self.Err }


type WriteError struct {
  Path string // Imatge D81
  Name string // Nom en la imatge
  Err  error
}

func (self *WriteError) Error() string {
  return fmt.Sprintf ( "unable to write '%s' into '%s': %s",
    self.Name, self.Path, self.Err )
}

func (self *WriteError) Unwrap() error { return self.Err }


/***********/
/* BUILDER */
/***********/

type Builder struct {

  Tool   string // Executable c1541
  Drive  int    // Unitat on s'adjunta la imatge
  Runner tools.Runner

}


func NewBuilder(tool string, drive int, runner tools.Runner) *Builder {

  ret := Builder{
    Tool: tool,
    Drive: drive,
    Runner: runner,
  }

  return &ret

} // end NewBuilder


// Els noms en el D81 sempre en minúscules.
func Name(name string) string {
  return cases.Lower ( language.Und ).String ( name )
} // end Name


// c1541 no sempre acaba amb un codi d'error, a vegades sols ho
// escriu.
func (self *Builder) run(ctx context.Context, args ...string) (*tools.Result,error) {

  res,err := self.Runner.Run ( ctx, self.Tool, args... )
  if err != nil { return nil,err }
  if err := res.Err (); err != nil { return res,err }
  for _,line := range strings.Split ( string(res.Stderr), "\n" ) {
    if strings.Contains ( strings.ToLower ( line ), "error" ) {
      return res,errors.New ( strings.TrimSpace ( line ) )
    }
  }

  return res,nil

} // end run


// Crea una imatge buida. Si ja existeix s'esborra abans.
func (self *Builder) Format(

  ctx   context.Context,
  path  string,
  label string,
  id    string,

) error {

  if err := os.Remove ( path ); err != nil && !os.IsNotExist ( err ) {
    return &FormatError{Path: path, Err: err}
  }
  _,err := self.run ( ctx, "-format", label+","+id, "d81", path,
    strconv.Itoa ( self.Drive ) )
  if err != nil {
    return &FormatError{Path: path, Err: err}
  }
  if _,err := os.Stat ( path ); err != nil {
    return &FormatError{Path: path, Err: err}
  }

  return nil

} // end Format


// Afegeix el fitxer local en la imatge amb el nom dst_name (en
// minúscules).
func (self *Builder) Write(

  ctx      context.Context,
  path     string,
  local    string,
  dst_name string,

) error {

  dst_name= Name ( dst_name )
  _,err := self.run ( ctx, "-attach", path, strconv.Itoa ( self.Drive ),
    "-write", local, dst_name )
  if err != nil {
    return &WriteError{Path: path, Name: dst_name, Err: err}
  }

  return nil

} // end Write


// 1    "dd-001          " 01 3d
// 12   "boot.exe"         prg
var list_re = regexp.MustCompile ( `^\s*\d+\s+"([^"]*)"\s+(\w+)` )

// Torna els noms dels fitxers de la imatge. La primera línia del
// llistat és la capçalera del disc.
func (self *Builder) List(ctx context.Context, path string) ([]string,error) {

  res,err := self.run ( ctx, "-attach", path, strconv.Itoa ( self.Drive ),
    "-list" )
  if err != nil {
    return nil,fmt.Errorf ( "unable to list '%s': %s", path, err )
  }

  ret := []string{}
  header := true
  for _,line := range strings.Split ( string(res.Stdout), "\n" ) {
    m := list_re.FindStringSubmatch ( line )
    if m == nil { continue }
    if header { header= false; continue }
    ret= append ( ret, m[1] )
  }

  return ret,nil

} // end List
