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
package d81

import (
  "context"
  "errors"
  "os"
  "path/filepath"
  "reflect"
  "testing"

  "github.com/adriagipas/dd001conv/tools"
  "github.com/adriagipas/dd001conv/tools/tooltest"
)


func TestName(t *testing.T) {

  tests := map[string]string{
    "BOOT.EXE": "boot.exe",
    "MULT.ASC": "mult.asc",
    "mouse0.exe": "mouse0.exe",
    "Fire.Prg": "fire.prg",
  }
  for in,want := range tests {
    if got := Name ( in ); got != want {
      t.Errorf ( "Name(%q) = %q, want %q", in, got, want )
    }
  }

} // end TestName


func TestFormatWriteList(t *testing.T) {

  ctx := context.Background ()
  sim := tooltest.NewSimulator ()
  b := NewBuilder ( "c1541", 8, sim )
  dir := t.TempDir ()
  img := filepath.Join ( dir, "out.d81" )
  local := filepath.Join ( dir, "BOOT.EXE" )
  if err := os.WriteFile ( local, []byte{0x00, 0x10, 0xea}, 0666 ); err != nil {
    t.Fatal ( err )
  }

  if err := b.Format ( ctx, img, "DD-001", "01" ); err != nil {
    t.Fatalf ( "Format: %v", err )
  }
  if err := b.Write ( ctx, img, local, "BOOT.EXE" ); err != nil {
    t.Fatalf ( "Write: %v", err )
  }
  names,err := b.List ( ctx, img )
  if err != nil {
    t.Fatalf ( "List: %v", err )
  }
  if !reflect.DeepEqual ( names, []string{ "boot.exe" } ) {
    t.Errorf ( "List = %v", names )
  }

  want := [][]string{
    { "-format", "DD-001,01", "d81", img, "8" },
    { "-attach", img, "8", "-write", local, "boot.exe" },
    { "-attach", img, "8", "-list" },
  }
  if len(sim.Calls) != len(want) {
    t.Fatalf ( "got %d calls, want %d", len(sim.Calls), len(want) )
  }
  for i,call := range sim.Calls {
    if call.Name != "c1541" || !reflect.DeepEqual ( call.Args, want[i] ) {
      t.Errorf ( "call %d = %s %v, want c1541 %v", i, call.Name,
        call.Args, want[i] )
    }
  }

} // end TestFormatWriteList


func TestFormatReplacesImage(t *testing.T) {

  sim := tooltest.NewSimulator ()
  b := NewBuilder ( "c1541", 9, sim )
  img := filepath.Join ( t.TempDir (), "out.d81" )
  if err := os.WriteFile ( img, []byte("old image"), 0666 ); err != nil {
    t.Fatal ( err )
  }
  if err := b.Format ( context.Background (), img, "DD-001", "01" ); err != nil {
    t.Fatalf ( "Format: %v", err )
  }
  data,err := os.ReadFile ( img )
  if err != nil || string(data) != "D81" {
    t.Errorf ( "image = %q, %v", data, err )
  }
  if got := sim.Calls[0].Args[4]; got != "9" {
    t.Errorf ( "drive = %s, want 9", got )
  }

} // end TestFormatReplacesImage


func TestErrors(t *testing.T) {

  tests := []struct{
    name   string
    status int
    stderr string
  }{
    {"exit status", 1, ""},
    {"stderr only", 0, "ERROR: disk full"},
    {"lower case", 0, "cannot write: error 72"},
  }
  for _,tc := range tests {
    t.Run ( tc.name, func(t *testing.T) {

      ctx := context.Background ()
      sim := tooltest.NewSimulator ()
      sim.Fail= func(name string, args []string) (int,string) {
        return tc.status,tc.stderr
      }
      b := NewBuilder ( "c1541", 8, sim )
      img := filepath.Join ( t.TempDir (), "out.d81" )

      var ferr *FormatError
      if err := b.Format ( ctx, img, "DD-001", "01" ); !errors.As ( err, &ferr ) {
        t.Errorf ( "Format = %v, want FormatError", err )
      }
      var werr *WriteError
      err := b.Write ( ctx, img, "local", "BOOT.EXE" )
      if !errors.As ( err, &werr ) {
        t.Fatalf ( "Write = %v, want WriteError", err )
      }
      if werr.Name != "boot.exe" || werr.Path != img {
        t.Errorf ( "WriteError = %+v", werr )
      }
      if _,err := b.List ( ctx, img ); err == nil {
        t.Error ( "List should fail" )
      }

    })
  }

} // end TestErrors


func TestFormatToolMissing(t *testing.T) {

  b := NewBuilder ( "c1541-missing", 8, tooltest.NewSimulator () )
  err := b.Format ( context.Background (),
    filepath.Join ( t.TempDir (), "out.d81" ), "DD-001", "01" )
  if !errors.Is ( err, tools.ErrNotFound ) {
    t.Errorf ( "Format = %v, want ErrNotFound", err )
  }

} // end TestFormatToolMissing


type listRunner struct {
  out string
}

func (self listRunner) Run(
  ctx context.Context,
  name string,
  args ...string,
) (*tools.Result,error) {
  return &tools.Result{ Cmd: name, Stdout: []byte(self.out) },nil
}


func TestListParsing(t *testing.T) {

  out := `0 "dd-001          " 01 3d
13   "boot.exe"         prg
1    "mult.asc"         prg
25   "gutz.exe"         prg
3160 blocks free.
`
  b := NewBuilder ( "c1541", 8, listRunner{out} )
  names,err := b.List ( context.Background (), "x.d81" )
  if err != nil {
    t.Fatalf ( "List: %v", err )
  }
  want := []string{ "boot.exe", "mult.asc", "gutz.exe" }
  if !reflect.DeepEqual ( names, want ) {
    t.Errorf ( "List = %v, want %v", names, want )
  }

} // end TestListParsing
