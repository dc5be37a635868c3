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
 *  args.go - Processament de la línia de comandaments.
 *
 */

package utils;

import (
  "errors"
  "fmt"
  "os"
  "path/filepath"
  "strconv"
  "strings"
)


/*********/
/* TIPUS */
/*********/

type Args struct {

  // Operador i arguments
  Op     int
  OpArgs []string

  // Opcions
  Folder    string // Carpeta de treball
  SrcImage  string // Imatge DD-001 (FAT12)
  DstImage  string // Imatge D81 destí
  Label     string // Etiqueta del disc D81
  DiskId    string // Identificador del disc D81
  Drive     int    // Número d'unitat per a c1541
  Table     string // Fitxer TOML amb les adreces d'inici. Buit vol
                   // dir la taula per defecte.
  Packer    string // exomizer | tscrunch
  C1541     string // Executable c1541
  Exomizer  string // Executable exomizer
  KeepGoing bool   // Continua si falla la compressió d'un fitxer
  Verify    bool   // Comprova el catàleg del D81 al final
  Verbose   bool
  Version   bool

}


/*************/
/* CONSTANTS */
/*************/

const OP_NONE    = 0
const OP_CONVERT = 1
const OP_LIST    = 2
const OP_SHOW    = 3
const OP_EXTRACT = 4
const OP_MKIMG   = 5

const DEFAULT_FOLDER    = "dd-001-boot"
const DEFAULT_SRC_IMAGE = "dd001boot-with-bootsector.img"
const DEFAULT_DST_IMAGE = "dd-001-boot.d81"
const DEFAULT_LABEL     = "DD-001"
const DEFAULT_DISK_ID   = "01"
const DEFAULT_DRIVE     = 8
const DEFAULT_PACKER    = "exomizer"


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func PrintUsage() {
  P := fmt.Println
  P("USAGE:\n")
  P("  dd001conv [<OPTIONS>] [<OP>] [<OPTIONS>]\n")
  P("    <OP>: <OP_CONVERT> | <OP_EXTRACT> | <OP_LIST> | <OP_SHOW> | <OP_MKIMG>")
  P("")
  P("    <OP_CONVERT>: convert")
  P("    <OP_EXTRACT>: extract")
  P("    <OP_LIST>:    (list | ls) [<IMG>]")
  P("    <OP_SHOW>:    (show | sh) [<IMG>]")
  P("    <OP_MKIMG>:   mkimg <IMG> <FOLDER>")
  P("")
  P("OPTIONS:\n")
  P("  -folder <DIR>       Working folder (default "+DEFAULT_FOLDER+")")
  P("  -img <FILE>         DD-001 source image, relative to the working")
  P("                      folder (default "+DEFAULT_SRC_IMAGE+")")
  P("  -d81 <FILE>         D81 destination image, relative to the working")
  P("                      folder (default "+DEFAULT_DST_IMAGE+")")
  P("  -label <LABEL>      D81 disk label (default "+DEFAULT_LABEL+")")
  P("  -id <ID>            D81 disk id (default "+DEFAULT_DISK_ID+")")
  P("  -drive <N>          Drive number used by c1541 (default 8)")
  P("  -table <FILE>       TOML file with the start addresses")
  P("  -packer <NAME>      exomizer | tscrunch (default "+DEFAULT_PACKER+")")
  P("  -c1541 <PATH>       c1541 executable (default c1541)")
  P("  -exomizer <PATH>    exomizer executable (default exomizer)")
  P("  -k                  Keep going when a file cannot be packed")
  P("  -noverify           Do not check the D81 catalog at the end")
  P("  -v                  Verbose")
  P("  -version            Print version")
  P("")
  P("OPERATIONS:\n")
  P("  convert: This is the default operation. Extracts every file of the")
  P("           DD-001 image into the working folder, packs the runnable")
  P("           ones and writes everything into a new D81 image.")
  P("")
  P("  extract: Like convert but without packing and without D81 image.")
  P("")
  P("  list: Show the files of a DD-001 image with their load addresses.")
  P("")
  P("  show: Show the information of a DD-001 image.")
  P("")
  P("  mkimg: Creates a DD-001 image from a folder of files carrying a")
  P("         two byte load address header.")
  P("")
}


// Torna el valor de l'opció i avança l'índex.
func option_value(argv []string, i *int) (string,error) {
  if *i+1 >= len(argv) {
    return "",fmt.Errorf ( "option %s requires a value", argv[*i] )
  }
  *i++
  return argv[*i],nil
} // end option_value


func (self *Args) parse_option(argv []string, i *int) error {

  var err error

  switch argv[*i] {
  case "-folder":
    self.Folder,err= option_value ( argv, i )
  case "-img":
    self.SrcImage,err= option_value ( argv, i )
  case "-d81":
    self.DstImage,err= option_value ( argv, i )
  case "-label":
    self.Label,err= option_value ( argv, i )
  case "-id":
    self.DiskId,err= option_value ( argv, i )
  case "-drive":
    var val string
    if val,err= option_value ( argv, i ); err == nil {
      var n int64
      n,err= strconv.ParseInt ( val, 10, 32 )
      if err == nil && (n < 8 || n > 11) {
        err= fmt.Errorf ( "drive number out of range (8-11): %d", n )
      }
      self.Drive= int(n)
    }
  case "-table":
    self.Table,err= option_value ( argv, i )
  case "-packer":
    self.Packer,err= option_value ( argv, i )
    if err == nil && self.Packer != "exomizer" && self.Packer != "tscrunch" {
      err= errors.New ( "unknown packer: "+self.Packer )
    }
  case "-c1541":
    self.C1541,err= option_value ( argv, i )
  case "-exomizer":
    self.Exomizer,err= option_value ( argv, i )
  case "-k":
    self.KeepGoing= true
  case "-noverify":
    self.Verify= false
  case "-v":
    self.Verbose= true
  case "-version", "--version":
    self.Version= true
  default:
    err= errors.New ( "unknown option: "+argv[*i] )
  }

  return err

} // end parse_option


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

// Processa els arguments (sense el nom del programa).
func ParseArgs(argv []string) (*Args,error) {

  // Crea arguments
  args := Args {
    Op       : OP_NONE,
    OpArgs   : []string{},
    Folder   : DEFAULT_FOLDER,
    SrcImage : DEFAULT_SRC_IMAGE,
    DstImage : DEFAULT_DST_IMAGE,
    Label    : DEFAULT_LABEL,
    DiskId   : DEFAULT_DISK_ID,
    Drive    : DEFAULT_DRIVE,
    Packer   : DEFAULT_PACKER,
    C1541    : "c1541",
    Exomizer : "exomizer",
    Verify   : true,
  }

  // Processa arguments. Les opcions poden anar abans o després de
  // l'operació.
  for i := 0; i < len(argv); i++ {
    if argv[i] == "-h" || argv[i] == "-help" || argv[i] == "--help" {
      return nil,ErrHelp
    } else if strings.HasPrefix ( argv[i], "-" ) {
      if err := args.parse_option ( argv, &i ); err != nil {
        return nil,err
      }
    } else if args.Op != OP_NONE {
      args.OpArgs= append ( args.OpArgs, argv[i] )
    } else {
      switch argv[i] {
      case "convert":
        args.Op= OP_CONVERT
      case "extract":
        args.Op= OP_EXTRACT
      case "list", "ls":
        args.Op= OP_LIST
      case "show", "sh":
        args.Op= OP_SHOW
      case "mkimg":
        args.Op= OP_MKIMG
      default:
        return nil,errors.New ( "unknown operation: "+argv[i] )
      }
    }
  }
  if args.Op == OP_NONE {
    args.Op= OP_CONVERT
  }

  // Comprovacions
  switch args.Op {
  case OP_CONVERT, OP_EXTRACT:
    if len(args.OpArgs) != 0 {
      return nil,fmt.Errorf ( "unexpected arguments: %v", args.OpArgs )
    }
  case OP_LIST, OP_SHOW:
    if len(args.OpArgs) > 1 {
      return nil,fmt.Errorf ( "too many arguments: %v", args.OpArgs )
    }
  case OP_MKIMG:
    if len(args.OpArgs) != 2 {
      return nil,errors.New ( "mkimg requires an image and a folder" )
    }
  }
  if args.Label == "" || args.DiskId == "" {
    return nil,errors.New ( "D81 label and disk id cannot be empty" )
  }

  return &args,nil

} // end ParseArgs


func NewArgs() (*Args,error) {
  return ParseArgs ( os.Args[1:] )
} // end NewArgs


// Torna el camí dins de la carpeta de treball si no és absolut.
func (self *Args) InFolder(file_name string) string {
  if filepath.IsAbs ( file_name ) {
    return file_name
  }
  return filepath.Join ( self.Folder, file_name )
} // end InFolder


// Imatge DD-001 a llegir. Per a list i show es pot indicar
// directament com a argument.
func (self *Args) SrcPath() string {
  if (self.Op == OP_LIST || self.Op == OP_SHOW) && len(self.OpArgs) == 1 {
    return self.OpArgs[0]
  }
  return self.InFolder ( self.SrcImage )
} // end SrcPath


func (self *Args) DstPath() string {
  return self.InFolder ( self.DstImage )
} // end DstPath


var ErrHelp = errors.New ( "help requested" )
