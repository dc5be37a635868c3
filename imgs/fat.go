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
 *  fat.go - Estructures comuns del sistema de fitxers FAT i de
 *           l'extensió DD-001 (adreça de càrrega).
 *
 */

package imgs

import (
  "encoding/binary"
  "errors"
  "fmt"
  "io"
  "strings"

  "github.com/go-restruct/restruct"
  "golang.org/x/text/encoding/charmap"

  "github.com/adriagipas/dd001conv/utils"
)


/***********/
/* FAT BPB */
/***********/

type _FAT_BPB struct {

  oem              string // OEM identifier. No és molt important
  bytes_per_sec    uint16 // Bytes per sector
  secs_per_clu     uint8  // Sectors per cluster
  reserved_secs    uint16 // Nombre de sectors reservats
  num_fat          uint8  // Nombre de File Allocation Tables (FAT's),
                          // típicament 2
  num_root_entries uint16 // Nombre d'entrades en el directori arrel.
  num_secs         uint32 // Nombre de sectors
  media_desc       uint8  // Media descriptor type
  secs_per_fat     uint16 // Nombre de sectors per FAT
  secs_per_track   uint16 // Nombre de sectors per track
  num_heads        uint16 // Nombre de capçals
  num_hidden_sec   uint32 // Nombre de sectors ocults

}


// Ompli el contingut referent al BPB a partir de les dades que se li
// passen.
func (self *_FAT_BPB) read(data []byte) error {

  // Comprova JMP SHORT 3C NOP (o semblant). El sector d'arrencada
  // del DD-001 s'ha hagut de substituir, però manté el salt.
  if data[0]!=0xeb && data[0]!=0xe9 {
    return fmt.Errorf ( "Invalid FAT BPB: The first three bytes "+
      "(%02x %02x %02x) should be (eb 3c 90) or similar ",
      data[0], data[1], data[2] )
  }

  self.oem= string(data[3:3+8])
  self.bytes_per_sec= binary.LittleEndian.Uint16 ( data[0xb:] )
  if self.bytes_per_sec == 0 {
    return errors.New ( "Invalid FAT BPB: bytes per sector is 0" )
  }
  self.secs_per_clu= data[0xd]
  if self.secs_per_clu == 0 {
    return errors.New ( "Invalid FAT BPB: sectors per cluster is 0" )
  }
  self.reserved_secs= binary.LittleEndian.Uint16 ( data[0xe:] )
  self.num_fat= data[0x10]
  self.num_root_entries= binary.LittleEndian.Uint16 ( data[0x11:] )

  // Nombre de sectors. Si el de 16 bits és 0 es mira el de 32.
  self.num_secs= uint32(binary.LittleEndian.Uint16 ( data[0x13:] ))
  if self.num_secs == 0 {
    self.num_secs= binary.LittleEndian.Uint32 ( data[0x20:] )
    if self.num_secs == 0 {
      return errors.New ( "Invalid FAT BPB: number of sectors is 0" )
    }
  }

  self.media_desc= data[0x15]
  self.secs_per_fat= binary.LittleEndian.Uint16 ( data[0x16:] )
  self.secs_per_track= binary.LittleEndian.Uint16 ( data[0x18:] )
  self.num_heads= binary.LittleEndian.Uint16 ( data[0x1a:] )
  self.num_hidden_sec= binary.LittleEndian.Uint32 ( data[0x1c:] )

  return nil

} // end read


func (self *_FAT_BPB) fPrintfInfo(file io.Writer, prefix string) error {

  // Preparació
  P := func(args... any) {
    fmt.Fprint ( file, prefix )
    fmt.Fprintln ( file, args... )
  }
  F := func(format string, args... any) {
    fmt.Fprint ( file, prefix )
    fmt.Fprintf ( file, format, args... )
    fmt.Fprint ( file, "\n" )
  }

  // Imprimeix
  P("BIOS Parameter Block")
  P("--------------------")
  P("")
  F("  * OEM:                 '%s'", self.oem )
  F("  * BYTES/SECTOR:        %d", self.bytes_per_sec )
  F("  * SECTORS/CLUSTER:     %d", self.secs_per_clu )
  F("  * RESERVED SECTORS:    %d", self.reserved_secs )
  F("  * NUM. FAT:            %d", self.num_fat )
  F("  * ROOT DIR. ENTRIES:   %d", self.num_root_entries )
  F("  * NUM. SECTORS:        %d (%s)", self.num_secs,
    utils.NumBytesToStr ( uint64(self.num_secs)*uint64(self.bytes_per_sec) ))
  F("  * MEDIA DESC. TYPE:    %02Xh", self.media_desc )
  F("  * SECTORS/FAT:         %d", self.secs_per_fat )
  F("  * SECTORS/TRACK:       %d", self.secs_per_track )
  F("  * NUM. HEADS:          %d", self.num_heads )
  F("  * NUM. HIDDEN SECTORS: %d", self.num_hidden_sec )

  return nil

} // end fPrintfInfo


/*****************/
/* FAT DIR ENTRY */
/*****************/

const FAT_DIR_READ_ONLY = 0x01
const FAT_DIR_HIDDEN    = 0x02
const FAT_DIR_SYSTEM    = 0x04
const FAT_DIR_VOLUME_ID = 0x08
const FAT_DIR_DIRECTORY = 0x10
const FAT_DIR_ARCHIVE   = 0x20

const FAT_DIR_LFN = FAT_DIR_READ_ONLY|FAT_DIR_HIDDEN|
  FAT_DIR_SYSTEM|FAT_DIR_VOLUME_ID

const FAT_DIR_ENTRY_SIZE = 32

// El firmware del DD-001 guarda l'adreça de càrrega en la paraula
// alta del cluster, que FAT12 no gasta.
const FAT_DIR_LOAD_ADDR_POS = 0x14

// Entrada de directori tal com està en el disc.
type _FAT_DirEntry struct {
  Name       [8]byte
  Ext        [3]byte
  Attr       uint8
  Reserved   uint8
  CTimeTenth uint8
  CTime      uint16
  CDate      uint16
  ADate      uint16
  LoadAddr   uint16 // DD-001
  MTime      uint16
  MDate      uint16
  Cluster    uint16
  Size       uint32
}


func decodeDirEntry(data []byte) (_FAT_DirEntry,error) {

  var ret _FAT_DirEntry
  if len(data) < FAT_DIR_ENTRY_SIZE {
    return ret,fmt.Errorf ( "Directory entry too short: %d bytes", len(data) )
  }
  err := restruct.Unpack ( data[:FAT_DIR_ENTRY_SIZE],
    binary.LittleEndian, &ret )

  return ret,err

} // end decodeDirEntry


// Torna el nom 8.3 en format NOM.EXT. Els noms estan en la pàgina de
// codis 437.
func (self *_FAT_DirEntry) fileName() string {

  raw := self.Name
  if raw[0] == 0x05 { raw[0]= 0xe5 } // 0xe5 escapat
  dec := charmap.CodePage437.NewDecoder ()
  name,err := dec.Bytes ( raw[:] )
  if err != nil { name= raw[:] }
  ext,err := dec.Bytes ( self.Ext[:] )
  if err != nil { ext= self.Ext[:] }

  ret := strings.TrimSpace ( string(name) )
  if tmp := strings.TrimSpace ( string(ext) ); tmp != "" {
    ret+= "."+tmp
  }

  return strings.ToUpper ( ret )

} // end fileName


/*********************/
/* FAT_DirectoryIter */
/*********************/

type _FAT_DirectoryIter struct {

  pos  int
  data []byte

}

func (self *_FAT_DirectoryIter) getPosEntry() int {
  return self.pos
}

// Comprova si l'iterador actual té més entrades o no.
func (self *_FAT_DirectoryIter) end() bool {
  return self.pos >= len(self.data) || self.data[self.pos]==0x00
}

func (self *_FAT_DirectoryIter) next() {
  self.pos+= FAT_DIR_ENTRY_SIZE
}

// Torna els attributs del fitxer actual
func (self *_FAT_DirectoryIter) getAttributes() uint8 {
  return self.data[self.pos+11]
}

// Ha de ser vàlid
func (self *_FAT_DirectoryIter) unused() bool {
  return self.data[self.pos]==0xe5
}

// Entrades que no són ni fitxers ni directoris: noms llargs i
// etiquetes de volum.
func (self *_FAT_DirectoryIter) skip() bool {
  attr := self.getAttributes ()
  return self.unused () || attr == FAT_DIR_LFN ||
    (attr&FAT_DIR_VOLUME_ID) != 0
}

func (self *_FAT_DirectoryIter) getEntry() []byte {
  return self.data[self.pos:self.pos+FAT_DIR_ENTRY_SIZE]
}

func (self *_FAT_DirectoryIter) decode() (_FAT_DirEntry,error) {
  return decodeDirEntry ( self.getEntry () )
}

func (self *_FAT_DirectoryIter) getName() string {
  e,err := self.decode ()
  if err != nil { return "" }
  return e.fileName ()
}

func (self *_FAT_DirectoryIter) getSize() uint32 {
  return binary.LittleEndian.Uint32 ( self.data[self.pos+28:] )
}

func (self *_FAT_DirectoryIter) getCluster() uint16 {
  return binary.LittleEndian.Uint16 ( self.data[self.pos+26:] )
}

func (self *_FAT_DirectoryIter) getLoadAddress() uint16 {
  return binary.LittleEndian.Uint16 (
    self.data[self.pos+FAT_DIR_LOAD_ADDR_POS:] )
}

func decodeTime(val uint16) (hh int,mm int,ss int) {
  return int(val>>11),int((val>>5)&0x3f),int(val&0x1f)*2
}

func decodeDate(val uint16) (yy int,mm int,dd int) {
  return (int(val>>9) + 80)%100,int((val>>5)&0xf),int(val&0x1f)
}

func (self *_FAT_DirectoryIter) list(file io.Writer) error {

  e,err := self.decode ()
  if err != nil { return err }

  P := func(args... any) {
    fmt.Fprint ( file, args... )
  }
  F := func(format string,args... any) {
    fmt.Fprintf ( file, format, args... )
  }

  // Attributs
  attr := e.Attr
  if (attr&FAT_DIR_DIRECTORY) != 0 { P("d") } else { P("-") }
  if (attr&FAT_DIR_HIDDEN) != 0 { P("h") } else { P("-") }
  if (attr&FAT_DIR_SYSTEM) != 0 { P("s") } else { P("-") }
  if (attr&FAT_DIR_READ_ONLY) != 0 { P("-") } else { P("w") }
  P("  ")

  // Grandària
  F("%10s  ",utils.NumBytesToStr ( uint64(e.Size) ))

  // Adreça de càrrega
  F("$%04X  ",e.LoadAddr)

  // Data i temps
  year,month,day := decodeDate ( e.MDate )
  F("%02d/%02d/%02d  ",day,month,year)
  hh,mm,ss := decodeTime ( e.MTime )
  F("%02d:%02d:%02d  ",hh,mm,ss)

  // Nom
  P(e.fileName (),"\n")

  return nil

} // end list


/*********/
/* UTILS */
/*********/

// Aquesta funció comprova si un nom de fitxer compleix amb
// l'estàndard 8.3, i si ho fa torna el nom preparat per a una
// entrada.
func FAT_GetFileName83(file_name string) ([]byte,error) {

  // Formatació prèvia.
  file_name= strings.ToUpper ( strings.TrimSpace ( file_name ) )
  if file_name == "" || file_name == "." {
    return nil,errors.New ( "Empty name" )
  }

  // Comprova format
  for _,c := range file_name {
    if (c < 'A' || c > 'Z' ) && (c < '0' || c > '9' ) &&
      !strings.ContainsRune ( "!#$%&'()-@^_`{}~.", c ) {
      return nil,fmt.Errorf ( "Character not supported in 8.3 name: %s",
        file_name )
    }
  }

  // Separa en nom i extensió
  tokens := strings.Split ( file_name, "." )
  if len(tokens) > 2 {
    return nil,fmt.Errorf ( "Wrong file name format: %s", file_name )
  }
  if len(tokens[0]) == 0 {
    return nil,fmt.Errorf ( "File name without name: %s", file_name )
  }
  if len(tokens[0]) > 8 {
    return nil,fmt.Errorf ( "File name too long: %s", file_name )
  }
  ext := ""
  if len(tokens) == 2 {
    ext= tokens[1]
    if len(ext) > 3 {
      return nil,fmt.Errorf ( "File extension too long: %s", file_name )
    }
  }

  // Omple amb espais
  ret := []byte(fmt.Sprintf ( "%-8s%-3s", tokens[0], ext ))

  return ret,nil

} // end FAT_GetFileName83
