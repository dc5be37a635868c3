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
 *  main.go - Converteix el disc d'arrencada del DD-001 (FAT12) en una
 *            imatge D81 amb els programes executables.
 *
 */

package main;

import (
  "errors"
  "os"

  log "github.com/sirupsen/logrus"

  "github.com/adriagipas/dd001conv/ops"
  "github.com/adriagipas/dd001conv/utils"
)

func main() {

  // Processa arguments
  args,err := utils.NewArgs ()
  if errors.Is ( err, utils.ErrHelp ) {
    utils.PrintUsage ()
    return
  } else if err != nil {
    utils.InitLog ( false )
    utils.PrintUsage ()
    log.Fatal ( err )
  }

  // Inicialitza log
  utils.InitLog ( args.Verbose )
  if args.Version {
    utils.PrintVersion ()
    return
  }

  // Executa operació
  switch args.Op {
  case utils.OP_LIST:
    err= ops.List ( args )
  case utils.OP_SHOW:
    err= ops.Show ( args )
  case utils.OP_MKIMG:
    err= ops.MkImg ( args )
  default: // OP_CONVERT, OP_EXTRACT
    err= ops.Convert ( args )
  }
  if err != nil {
    log.Error ( err )
    os.Exit ( 1 )
  }

} // end main
