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
 *  runner.go - Execució d'eines externes (c1541, exomizer). Cada
 *              crida torna l'estat, la sortida i els errors.
 *
 */

package tools

import (
  "bytes"
  "context"
  "errors"
  "fmt"
  "os/exec"
  "strings"

  log "github.com/sirupsen/logrus"
)


/**********/
/* RESULT */
/**********/

type Result struct {
  Cmd    string // Línia de comandaments, per als missatges
  Status int    // Codi d'eixida
  Stdout []byte
  Stderr []byte
}


// Torna un error si l'eina ha acabat amb un codi diferent de 0.
func (self *Result) Err() error {
  if self.Status == 0 {
    return nil
  }
  return &ExitError{
    Cmd: self.Cmd,
    Status: self.Status,
    Stderr: strings.TrimSpace ( string(self.Stderr) ),
  }
} // end Err


type ExitError struct {
  Cmd    string
  Status int
  Stderr string
}

func (self *ExitError) Error() string {
  if self.Stderr == "" {
    return fmt.Sprintf ( "'%s' exited with status %d", self.Cmd, self.Status )
  }
  return fmt.Sprintf ( "'%s' exited with status %d: %s",
    self.Cmd, self.Status, self.Stderr )
}

var ErrNotFound = errors.New ( "executable not found in PATH" )


/**********/
/* RUNNER */
/**********/

type Runner interface {

  // Executa l'eina i espera que acabe. Sols torna error si no s'ha
  // pogut executar; un codi d'eixida diferent de 0 es veu en Result.
  Run(ctx context.Context, name string, args ...string) (*Result,error)

}


type ExecRunner struct{}


func CommandLine(name string, args ...string) string {
  return strings.Join ( append ( []string{name}, args... ), " " )
} // end CommandLine


func (ExecRunner) Run(

  ctx  context.Context,
  name string,
  args ...string,

) (*Result,error) {

  ret := Result{
    Cmd: CommandLine ( name, args... ),
  }
  log.Debugf ( "running: %s", ret.Cmd )

  // Comprova que existeix
  if _,err := exec.LookPath ( name ); err != nil {
    return nil,fmt.Errorf ( "%s: %w", name, ErrNotFound )
  }

  // Executa
  var stdout,stderr bytes.Buffer
  cmd := exec.CommandContext ( ctx, name, args... )
  cmd.Stdout= &stdout
  cmd.Stderr= &stderr
  err := cmd.Run ()
  ret.Stdout,ret.Stderr= stdout.Bytes (),stderr.Bytes ()

  var exit_err *exec.ExitError
  if errors.As ( err, &exit_err ) {
    ret.Status= exit_err.ExitCode ()
  } else if err != nil {
    return nil,fmt.Errorf ( "unable to run '%s': %w", ret.Cmd, err )
  }
  log.WithField ( "status", ret.Status ).Debugf ( "finished: %s", ret.Cmd )

  return &ret,nil

} // end Run
