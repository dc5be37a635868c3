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
 *  packer.go - Compressió dels fitxers executables en fitxers
 *              autoexecutables per al C64.
 *
 */

package packer

import (
  "bytes"
  "context"
  "errors"
  "fmt"
  "os"

  "github.com/staD020/TSCrunch"

  "github.com/adriagipas/dd001conv/tools"
)


/**********/
/* ERRORS */
/**********/

type CompressionError struct {
  Input string
  Err   error
}

func (self *CompressionError) Error() string {
  return fmt.Sprintf ( "unable to pack '%s': %s", self.Input, self.Err )
}

func (self *CompressionError) Unwrap() error { return self.Err }


/**********/
/* PACKER */
/**********/

type Packer interface {

  // Comprimeix INPUT (amb adreça de càrrega) i escriu en OUTPUT un
  // fitxer que es descomprimeix i salta a START.
  Pack(ctx context.Context, input string, start uint16, output string) error

  Name() string

}


func New(name string, tool string, runner tools.Runner) (Packer,error) {

  switch name {
  case "exomizer":
    return NewExomizer ( tool, runner ),nil
  case "tscrunch":
    return &TSCrunchPacker{},nil
  default:
    return nil,fmt.Errorf ( "unknown packer: %s", name )
  }

} // end New


// Les eines externes poden acabar bé sense deixar res.
func checkOutput(output string) error {

  info,err := os.Stat ( output )
  if err != nil {
    return fmt.Errorf ( "output not produced: %s", err )
  }
  if info.Size () <= 2 {
    return fmt.Errorf ( "output '%s' is empty", output )
  }

  return nil

} // end checkOutput


/************/
/* EXOMIZER */
/************/

// Fitxers autoexecutables amb exomizer sfx per a la configuració
// per defecte del C64.
type Exomizer struct {

  Tool   string
  Target string // -t64
  Runner tools.Runner

}


func NewExomizer(tool string, runner tools.Runner) *Exomizer {

  ret := Exomizer{
    Tool: tool,
    Target: "64",
    Runner: runner,
  }

  return &ret

} // end NewExomizer


func (self *Exomizer) Name() string { return "exomizer" }


func (self *Exomizer) Pack(

  ctx    context.Context,
  input  string,
  start  uint16,
  output string,

) error {

  fail := func(err error) error {
    return &CompressionError{Input: input, Err: err}
  }

  // Esborra restes d'execucions anteriors
  if err := os.Remove ( output ); err != nil && !os.IsNotExist ( err ) {
    return fail ( err )
  }

  res,err := self.Runner.Run ( ctx, self.Tool, "sfx",
    fmt.Sprintf ( "0x%04x", start ), "-t"+self.Target, input, "-o", output )
  if err != nil { return fail ( err ) }
  if err := res.Err (); err != nil { return fail ( err ) }
  if err := checkOutput ( output ); err != nil { return fail ( err ) }

  return nil

} // end Pack


/************/
/* TSCRUNCH */
/************/

// Compressió sense eines externes.
type TSCrunchPacker struct{}


func (self *TSCrunchPacker) Name() string { return "tscrunch" }


func (self *TSCrunchPacker) Pack(

  ctx    context.Context,
  input  string,
  start  uint16,
  output string,

) error {

  fail := func(err error) error {
    return &CompressionError{Input: input, Err: err}
  }

  if err := ctx.Err (); err != nil { return fail ( err ) }

  // Llig el fitxer. Ha de portar l'adreça de càrrega.
  data,err := os.ReadFile ( input )
  if err != nil { return fail ( err ) }
  if len(data) < 3 {
    return fail ( errors.New ( "file too short to carry a load address" ) )
  }

  opt := TSCrunch.Options{
    PRG: true,
    QUIET: true,
    INPLACE: false,
    Fast: false,
    JumpTo: fmt.Sprintf ( "$%04x", start ),
  }
  tsc,err := TSCrunch.New ( opt, bytes.NewReader ( data ) )
  if err != nil { return fail ( err ) }

  var buf bytes.Buffer
  if _,err := tsc.WriteTo ( &buf ); err != nil { return fail ( err ) }
  if err := os.WriteFile ( output, buf.Bytes (), 0666 ); err != nil {
    return fail ( err )
  }

  return nil

} // end Pack
