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
package tools

import (
  "context"
  "errors"
  "os/exec"
  "strings"
  "testing"
)


func TestResultErr(t *testing.T) {

  ok := Result{ Cmd: "c1541 -list" }
  if err := ok.Err (); err != nil {
    t.Errorf ( "Err = %v, want nil", err )
  }

  bad := Result{ Cmd: "c1541 -list", Status: 2, Stderr: []byte("  boom\n") }
  err := bad.Err ()
  var eerr *ExitError
  if !errors.As ( err, &eerr ) {
    t.Fatalf ( "Err = %v, want ExitError", err )
  }
  if eerr.Status != 2 || eerr.Stderr != "boom" {
    t.Errorf ( "ExitError = %+v", eerr )
  }
  if !strings.Contains ( err.Error (), "status 2" ) {
    t.Errorf ( "message = %s", err )
  }

} // end TestResultErr


func TestExecRunner(t *testing.T) {

  if _,err := exec.LookPath ( "sh" ); err != nil {
    t.Skip ( "sh not available" )
  }
  ctx := context.Background ()

  res,err := ExecRunner{}.Run ( ctx, "sh", "-c", "echo out; echo err >&2; exit 3" )
  if err != nil {
    t.Fatalf ( "Run: %v", err )
  }
  if res.Status != 3 || string(res.Stdout) != "out\n" ||
    string(res.Stderr) != "err\n" {
    t.Errorf ( "Result = %+v", res )
  }
  if res.Cmd != "sh -c echo out; echo err >&2; exit 3" {
    t.Errorf ( "Cmd = %q", res.Cmd )
  }

  _,err= ExecRunner{}.Run ( ctx, "dd001conv-no-such-tool" )
  if !errors.Is ( err, ErrNotFound ) {
    t.Errorf ( "Run = %v, want ErrNotFound", err )
  }

} // end TestExecRunner
