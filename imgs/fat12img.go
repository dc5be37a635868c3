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
 *  fat12img.go - Implementa el sistema de fitxers FAT12 dels disquets
 *                DD-001.
 *
 */

package imgs

import (
  "errors"
  "fmt"
  "io"
  "os"
  "strings"
  "time"

  "github.com/adriagipas/dd001conv/utils"
)


/*********/
/* FAT12 */
/*********/

// Segueix una aproximació lazzy
type _FAT12 struct {

  file_name string
  length    uint64 // Grandària en bytes

  // Estructures internes inicialment no inicialitzades
  br_init      bool
  br           _FAT12_BR
  fat          _FAT12_Table
  fat_modified bool // Indica que la FAT s'ha d'escriure en el disc

}


func newFAT12(file_name string) (*_FAT12,error) {

  // Obté grandària
  info,err := os.Stat ( file_name )
  if err != nil { return nil,err }
  if info.Size () == 0 {
    return nil,errors.New ( "Invalid zero length for a FAT12 image" )
  }

  ret := _FAT12 {
    file_name: file_name,
    length: uint64(info.Size ()),
  }

  return &ret,nil

} // end newFAT12


func (self *_FAT12) GetRootDirectory() (Directory,error) {

  // Obri el fitxer
  f,err := os.Open ( self.file_name )
  if err != nil { return nil,err }
  defer f.Close ()

  // Llig el FAT Boot Record
  br,err := self.fGetBR ( f )
  if err != nil { return nil,err }

  // Llig el contingut
  tmp_secs := int64(br.bpb.reserved_secs) +
    int64(br.bpb.num_fat)*int64(br.bpb.secs_per_fat)
  offset := tmp_secs*int64(br.bpb.bytes_per_sec)
  data := make ( []byte, int64(br.bpb.num_root_entries)*FAT_DIR_ENTRY_SIZE )
  if err := self.readBytes ( f, data, offset ); err != nil {
    return nil,fmt.Errorf ( "Error while reading root directory: %s", err )
  }

  ret := _FAT12_Directory{
    img: self,
    data: data,
    offset: offset,
  }

  return &ret,nil

} // end GetRootDirectory


func (self *_FAT12) PrintInfo(file io.Writer, prefix string) error {

  f,err := os.Open ( self.file_name )
  if err != nil { return err }
  defer f.Close ()

  fmt.Fprintf ( file, "%sFAT12 image\n", prefix )
  fmt.Fprintln ( file, prefix, "" )

  // Imprimeix el FAT Boot Record
  br,err := self.fGetBR ( f )
  if err != nil { return err }
  if err := br.fPrintfInfo ( file, prefix ); err != nil {
    return fmt.Errorf ( "Unable to print FAT12 BR: %s", err )
  }

  // Imprimeix informació FAT Table
  fat,err := self.fGetFAT ( f )
  if err != nil { return err }
  if err := fat.fPrintInfo ( file, prefix, br ); err != nil {
    return fmt.Errorf ( "Unable to print FAT12 table info: %s", err )
  }

  return nil

} // end PrintInfo


func (self *_FAT12) fAllocCluster(f *os.File) (uint16,error) {

  fat,err := self.fGetFAT ( f )
  if err != nil { return 0,err }

  // La taula pot tindre més entrades que clusters té el disc.
  data_offset,err := self.fGetDataOffset ( f )
  if err != nil { return 0,err }
  cluster_size,err := self.fGetClusterSize ( f )
  if err != nil { return 0,err }
  max := int64(fat.length ())
  if tmp := (int64(self.length)-data_offset)/cluster_size + 2; tmp < max {
    max= tmp
  }

  // Busca el primer cluster buit. El 0 significa lliure.
  for i := uint16(2); int64(i) < max; i++ {
    if fat.get ( i ) == 0 {
      fat.write ( i, FAT12_END_CHAIN )
      self.fat_modified= true
      return i,nil
    }
  }

  return 0,errors.New ( "Not enough space" )

} // end fAllocCluster


func (self *_FAT12) fGetBR(f *os.File) (*_FAT12_BR,error) {

  if !self.br_init {
    if err := self.br.read ( f, self.length ); err != nil {
      return nil,fmt.Errorf ( "Unable to read FAT12 BR: %s", err )
    }
    self.br_init= true
  }

  return &self.br,nil

} // end fGetBR


func (self *_FAT12) fGetClusterSize(f *os.File) (int64,error) {

  br,err := self.fGetBR ( f )
  if err != nil { return -1,err }

  return int64(br.bpb.secs_per_clu)*int64(br.bpb.bytes_per_sec),nil

} // end fGetClusterSize


func (self *_FAT12) fGetDataOffset(f *os.File) (int64,error) {

  br,err := self.fGetBR ( f )
  if err != nil { return -1,err }

  sec_size := int64(br.bpb.bytes_per_sec)
  fat_size := int64(br.bpb.num_fat)*int64(br.bpb.secs_per_fat)
  root_dir_secs := (int64(br.bpb.num_root_entries)*FAT_DIR_ENTRY_SIZE +
    sec_size - 1) / sec_size

  return (int64(br.bpb.reserved_secs) + fat_size + root_dir_secs)*sec_size,nil

} // end fGetDataOffset


func (self *_FAT12) fGetFAT(f *os.File) (_FAT12_Table,error) {

  if self.fat == nil {

    br,err := self.fGetBR ( f )
    if err != nil { return nil, err }

    // Adreça del primer sector de la taula
    first_fat_sector := int64(br.bpb.reserved_secs)*int64(br.bpb.bytes_per_sec)
    fat_size := int64(br.bpb.secs_per_fat)*int64(br.bpb.bytes_per_sec)
    if fat_size == 0 {
      return nil,fmt.Errorf ( "Wrong FAT12 table size: %d", fat_size )
    }

    // Reserva i llig
    fat := _FAT12_Table(make ( []byte, fat_size ))
    if err := self.readBytes ( f, fat, first_fat_sector ); err != nil {
      return nil,fmt.Errorf ( "Error while reading FAT12 table: %s", err )
    }

    // Comprovacions semàntiques
    if tmp := (0xF00 | uint16(br.bpb.media_desc)); fat.get ( 0 ) != tmp {
      return nil,fmt.Errorf ( "FAT12[0] and media descriptor type differ:"+
        " %03X != %03X ", fat.get ( 0 ), tmp )
    }

    self.fat= fat
    self.fat_modified= false
  }

  return self.fat,nil

} // end fGetFAT


func (self *_FAT12) fWriteFAT(f *os.File) (error) {

  // Si no s'ha modificat no fa res
  if self.fat == nil || !self.fat_modified {
    return nil
  }

  br,err := self.fGetBR ( f )
  if err != nil { return err }

  // Escriu totes les còpies
  offset := int64(br.bpb.reserved_secs)*int64(br.bpb.bytes_per_sec)
  for i := 0; i < int(br.bpb.num_fat); i++ {
    if err := self.writeBytes ( f, self.fat, offset ); err != nil {
      return fmt.Errorf ( "Error while writing FAT table %d: %s", i+1, err )
    }
    offset+= int64(len(self.fat))
  }
  self.fat_modified= false

  return nil

} // end fWriteFAT


// Llig bytes d'un fitxer fent comprovacions
func (self *_FAT12) readBytes(f *os.File, buf []byte, offset int64) error {
  return utils.ReadBytes ( f, 0, int64(self.length), buf, offset )
} // readBytes


// Escriu bytes en un fitxer fent comprovacions
func (self *_FAT12) writeBytes(f *os.File, buf []byte, offset int64) error {
  return utils.WriteBytes ( f, 0, int64(self.length), buf, offset )
} // writeBytes


/*********************/
/* FAT12 FILE READER */
/*********************/

type _FAT12_FileReader struct {

  f   *os.File // Fitxer d'on llegir
  img *_FAT12  // Punter a la classe pare

  // Estat intern
  data_offset  int64    // Offset on comencen les dades
  cluster_size int64    // Grandària d'un cluster
  cluster_data []byte   // Dades del cluster actual
  pos          int64    // Posició dins del cluster actual
  chain        []uint16 // Clusters que falten per llegir
  remain       uint32   // Bytes que falten per llegir

}


func (self *_FAT12_FileReader) load_next_cluster() error {

  // Si està buit no fa res
  if self.remain == 0 { return nil }
  if len(self.chain) == 0 {
    return fmt.Errorf ( "Cluster chain is truncated: %d bytes missing",
      self.remain )
  }

  // Llig cluster
  cluster := self.chain[0]
  offset := self.data_offset + int64(cluster-2)*self.cluster_size
  if err := self.img.readBytes ( self.f, self.cluster_data, offset ); err != nil {
    return fmt.Errorf ( "Error while reading cluster %d: %s", cluster, err )
  }

  // Actualitza estat
  self.pos= 0
  self.chain= self.chain[1:]

  return nil

} // end load_next_cluster


func (self *_FAT12_FileReader) Read(buf []byte) (int,error) {

  if self.remain == 0 { return 0,io.EOF }

  pos := 0
  for ; pos < len(buf) && self.remain > 0; {

    // Llig el següent cluster si cal
    if self.pos == self.cluster_size {
      if err := self.load_next_cluster (); err != nil {
        return pos,err
      }
    }

    // Bytes a llegir
    nbytes := int64(len(buf)-pos)
    if tmp := self.cluster_size-self.pos; tmp < nbytes { nbytes= tmp }
    if tmp := int64(self.remain); tmp < nbytes { nbytes= tmp }

    // Copia del cluster
    copy ( buf[pos:], self.cluster_data[self.pos:self.pos+nbytes] )
    pos+= int(nbytes)
    self.pos+= nbytes
    self.remain-= uint32(nbytes)

  }

  return pos,nil

} // end Read


func (self *_FAT12_FileReader) Close() error {
  return self.f.Close ()
}


/*********************/
/* FAT12 FILE WRITER */
/*********************/

type _FAT12_FileWriter struct {

  f    *os.File         // Fitxer on escriure
  img  *_FAT12          // Punter a la classe pare
  pdir *_FAT12_Directory // Directori que conté el fitxer

  // Estat intern
  entry        []byte // Entrada en el directori.
  data_offset  int64  // Offset on comencen les dades
  cluster_size int64  // Grandària d'un cluster
  cluster_data []byte // Dades del cluster actual
  pos          int64  // Posició dins del cluster actual
  cluster      uint16 // cluster actual
  size         uint32 // Grandària del fitxer. Inicialment 0
  load_addr    uint16

}


// Si CHAIN és true reserva un nou cluster
func (self *_FAT12_FileWriter) write_cluster(chain bool) error {

  // COMPTE!! pot ser no estiga ple, per això fique self.pos
  tmp_size := int64(self.size) + self.pos
  if tmp_size > 0xFFFFFFFF {
    return errors.New ( "Error while writing cluster: file is too big" )
  }
  self.size= uint32(tmp_size)

  // Escriu
  offset := self.data_offset + int64(self.cluster-2)*self.cluster_size
  if err := self.img.writeBytes ( self.f,
    self.cluster_data[:self.pos], offset ); err != nil {
    return fmt.Errorf ( "Error while writing cluster %d: %s",
      self.cluster, err )
  }

  // Encadena
  if chain {
    cluster,err := self.img.fAllocCluster ( self.f )
    if err != nil { return err }
    self.img.fat.write ( self.cluster, cluster )
    self.cluster= cluster
    self.pos= 0
  }

  return nil

} // end write_cluster


func (self *_FAT12_FileWriter) Write(buf []byte) (int,error) {

  lbuf,pos := len(buf),0
  for ; pos < lbuf; {

    // Escriu cluster. Ho faig sempre just abans d'intentar copiar
    // alguna cosa. M'assegure del chain.
    if self.pos == self.cluster_size {
      if err := self.write_cluster ( true ); err != nil {
        return pos,err
      }
    }

    // Copia
    n := copy ( self.cluster_data[self.pos:], buf[pos:] )
    self.pos+= int64(n)
    pos+= n

  }

  return pos,nil

} // end Write


// Fixa l'adreça de càrrega que es guardarà en l'entrada.
func (self *_FAT12_FileWriter) SetLoadAddress(addr uint16) {
  self.load_addr= addr
} // end SetLoadAddress


func (self *_FAT12_FileWriter) Close() error {

  defer self.f.Close ()

  // Escriu dades pendents.
  if self.pos > 0 {
    if err := self.write_cluster ( false ); err != nil {
      return err
    }
  }

  // Actualitza entrada
  self.entry[FAT_DIR_LOAD_ADDR_POS]= uint8(self.load_addr)
  self.entry[FAT_DIR_LOAD_ADDR_POS+1]= uint8(self.load_addr>>8)
  self.entry[28]= uint8(self.size)
  self.entry[29]= uint8(self.size>>8)
  self.entry[30]= uint8(self.size>>16)
  self.entry[31]= uint8(self.size>>24)
  self.pdir.modified= true

  // Escriu resta estructures en el disc
  if err := self.pdir.fWrite ( self.f ); err != nil {
    return err
  }

  return self.img.fWriteFAT ( self.f )

} // end Close


/************/
/* FAT12 BR */
/************/

const FAT12_BR_SIZE = 512

type _FAT12_BR struct {

  bpb    _FAT_BPB // BIOS Parameter Block
  number uint8    // Número de dispositiu, no és molt util
  id     uint32   // VolumeID. No és molt important
  label  string   // Etiqueta del volum
  sys_id string   // Identificació de sistema
  esign  uint8

}

// Ompli el contingut referent al BR
func (self *_FAT12_BR) read(f *os.File, length uint64) error {

  // Intenta llegir el primer sector
  var buf [FAT12_BR_SIZE]byte
  if length < FAT12_BR_SIZE {
    return fmt.Errorf("Not enough bytes (%d) to read the FAT Boot Record",
      length)
  }
  if err := utils.ReadBytes ( f, 0, int64(length), buf[:], 0 ); err != nil {
    return err
  }

  // Llig el BIOS BR
  if err := self.bpb.read ( buf[:] ); err != nil {
    return err
  }

  self.number= buf[0x24]
  self.esign= buf[0x26]
  self.id= uint32(buf[0x27]) |
    (uint32(buf[0x28])<<8) |
    (uint32(buf[0x29])<<16) |
    (uint32(buf[0x2a])<<24)
  self.label= string(buf[0x2b:0x2b+11])
  self.sys_id= string(buf[0x36:0x36+8])

  // Comprova bootable signature
  if buf[0x1fe]!=0x55 || buf[0x1ff]!=0xaa {
    return fmt.Errorf ( "Invalid boot sector signature (%02X%02Xh)"+
      " in FAT12 Boot Record", buf[0x1ff], buf[0x1fe] )
  }

  return nil

} // end read


func (self *_FAT12_BR) fPrintfInfo(file io.Writer, prefix string) error {

  // Imprimeix BPB
  if err := self.bpb.fPrintfInfo ( file, prefix ); err != nil {
    return err
  }

  F := func(format string, args... any) {
    fmt.Fprint ( file, prefix )
    fmt.Fprintf ( file, format, args... )
    fmt.Fprint ( file, "\n" )
  }

  // Imprimeix Extended Boot Record
  if self.esign == 0x28 || self.esign == 0x29 {
    F("")
    F("Extended Boot Record")
    F("--------------------")
    F("")
    F("  * DRIVE NUMBER: %02Xh", self.number )
    F("  * VOLUME ID:    %08Xh", self.id )
    if self.esign == 0x29 {
      F("  * VOLUM LABEL:  '%s'", self.label )
      F("  * SYSTEM ID:    '%s'", self.sys_id )
    }
  }

  return nil

} // end fPrintfInfo


/*******************/
/* FAT12 DIRECTORY */
/*******************/

// Sols el directori arrel. Els disquets DD-001 no tenen
// subdirectoris.
type _FAT12_Directory struct {

  img      *_FAT12 // Referència a imatge
  offset   int64   // Offset en la imatge
  data     []byte  // Contingut
  modified bool

}


// Aquest mètode ompli una nova entrada amb el nom indicat i torna el
// cluster i l'entrada del directori al que apunta.
func (self *_FAT12_Directory) fNewEntry(

  f    *os.File,
  name string,

) (uint16,[]byte,error) {

  // Comprova el nom
  file_name,err := FAT_GetFileName83 ( name )
  if err != nil {
    return 0,nil,fmt.Errorf ( "Only 8.3 file names supported: %s", err )
  }

  // Busca la primera entrada lliure
  pos := 0
  for ; pos < len(self.data) && self.data[pos]!=0x00 && self.data[pos]!=0xe5;
  pos+= FAT_DIR_ENTRY_SIZE {
  }
  if pos >= len(self.data) {
    return 0,nil,errors.New ( "Root directory is full" )
  }
  next_pos := pos+FAT_DIR_ENTRY_SIZE
  if self.data[pos] == 0x00 && next_pos < len(self.data) {
    self.data[next_pos]= 0x00 // Fixa el nou final
  }

  // Ompli l'entry
  entry := self.data[pos:next_pos]
  for i := range entry { entry[i]= 0x00 }
  copy ( entry, file_name )
  entry[11]= FAT_DIR_ARCHIVE
  t := time.Now ()
  year,month,day := (t.Year()+20)%100,t.Month(),t.Day()
  date := uint16(day&0x1f) | (uint16(month&0xf)<<5) | (uint16(year&0x7f)<<9)
  hh,mm,ss := t.Hour(),t.Minute(),t.Second()/2
  tm := uint16(ss&0x1f) | (uint16(mm&0x3f)<<5) | (uint16(hh&0x1f)<<11)
  entry[14],entry[15]= uint8(tm),uint8(tm>>8)
  entry[16],entry[17]= uint8(date),uint8(date>>8)
  entry[18],entry[19]= uint8(date),uint8(date>>8)
  entry[22],entry[23]= uint8(tm),uint8(tm>>8)
  entry[24],entry[25]= uint8(date),uint8(date>>8)
  cluster,err := self.img.fAllocCluster ( f )
  if err != nil { return 0,nil,err }
  entry[26]= uint8(cluster)
  entry[27]= uint8(cluster>>8)
  self.modified= true

  return cluster,entry,nil

} // end fNewEntry


func (self *_FAT12_Directory) fWrite(f *os.File) error {

  if !self.modified { return nil }
  if err := self.img.writeBytes ( f, self.data, self.offset ); err != nil {
    return fmt.Errorf ( "Error while writing directory entries: %s", err )
  }
  self.modified= false

  return nil

} // end fWrite


func (self *_FAT12_Directory) begin() *_FAT12_DirectoryIter {

  ret := _FAT12_DirectoryIter{
    pdir: self,
    it: _FAT_DirectoryIter{
      pos: 0,
      data: self.data,
    },
  }
  for ; !ret.it.end () && ret.it.skip (); ret.it.next () {
  }

  return &ret

} // end begin


func (self *_FAT12_Directory) Begin() (DirectoryIter,error) {
  return self.begin (),nil
} // end Begin


func (self *_FAT12_Directory) GetFileWriter(name string) (FileWriter,error) {

  // Obri fitxer
  f,err := os.OpenFile ( self.img.file_name, os.O_RDWR, 0666 )
  if err != nil {
    return nil,fmt.Errorf ( "Unable to open for writing '%s': %s",
      self.img.file_name, err )
  }

  // Cerca si existeix el fitxer
  var file_cluster uint16
  var file_entry []byte
  it := self.begin ()
  for ; !it.End() && !it.CompareToName ( name ); it.Next () {
  }
  if it.End() {
    file_cluster,file_entry,err= self.fNewEntry ( f, name )
  } else {
    file_cluster,file_entry,err= it.fOverwriteFile ( f )
  }
  if err != nil {
    f.Close ()
    return nil,err
  }

  // Crea FileWriter
  cluster_size,err := self.img.fGetClusterSize ( f )
  if err != nil { f.Close (); return nil,err }
  data_offset,err := self.img.fGetDataOffset ( f )
  if err != nil { f.Close (); return nil,err }
  ret := _FAT12_FileWriter{
    f: f,
    img: self.img,
    pdir: self,
    entry: file_entry,
    data_offset: data_offset,
    cluster_size: cluster_size,
    cluster_data: make ( []byte, cluster_size ),
    cluster: file_cluster,
  }

  return &ret,nil

} // end GetFileWriter


/************************/
/* FAT12 DIRECTORY ITER */
/************************/

type _FAT12_DirectoryIter struct {

  pdir *_FAT12_Directory
  it    _FAT_DirectoryIter

}


// Allibera la cadena del fitxer i torna Cluster,Entry,Error
func (self *_FAT12_DirectoryIter) fOverwriteFile(
  f *os.File,
) (uint16,[]byte,error) {

  // Comprovacions
  attr := self.it.getAttributes ()
  if (attr&(FAT_DIR_SYSTEM|FAT_DIR_DIRECTORY|FAT_DIR_READ_ONLY)) != 0 {
    return 0,nil,errors.New ( "Only non read-only regular files"+
      " can be overwritten" )
  }

  fat,err := self.pdir.img.fGetFAT ( f )
  if err != nil { return 0,nil,err }

  // Obté cluster i neteja
  file_cluster := self.it.getCluster ()
  p := fat.get ( file_cluster )
  for ; p < FAT12_BAD_CLUSTER && p > 1 ; {
    q := p
    p= fat.get ( p )
    fat.write ( q, 0 ) // Allibera
  }
  fat.write ( file_cluster, FAT12_END_CHAIN )
  self.pdir.img.fat_modified= true

  // Grandària a 0
  file_entry := self.it.getEntry ()
  file_entry[28],file_entry[29],file_entry[30],file_entry[31]= 0,0,0,0
  self.pdir.modified= true

  return file_cluster,file_entry,nil

} // end fOverwriteFile


func (self *_FAT12_DirectoryIter) CompareToName(name string) bool {
  return strings.EqualFold ( self.GetName (), strings.TrimSpace ( name ) )
} // end CompareToName


func (self *_FAT12_DirectoryIter) End() bool {
  return self.it.end ()
}


func (self *_FAT12_DirectoryIter) GetFileReader() (FileReader,error) {

  // Comprovacions
  if self.End() {
    return nil,errors.New ( "Trying to obtain a file reader from a"+
      " ended iterator" )
  }
  if self.Type () != DIRECTORY_ITER_TYPE_FILE {
    return nil,errors.New ( "Trying to obtain a file reader from a"+
      " non file entry" )
  }

  img := self.pdir.img
  f,err := os.Open ( img.file_name )
  if err != nil { return nil,err }

  // Calcula valors
  data_offset,err := img.fGetDataOffset ( f )
  if err != nil { f.Close (); return nil,err }
  cluster_size,err := img.fGetClusterSize ( f )
  if err != nil { f.Close (); return nil,err }
  fat,err := img.fGetFAT ( f )
  if err != nil { f.Close (); return nil,err }

  // Cadena de clusters. Un fitxer buit no en té.
  size := self.it.getSize ()
  var chain []uint16
  if size > 0 {
    chain,err= fat.chainOf ( self.it.getCluster () )
    if err != nil { f.Close (); return nil,err }
    if int64(len(chain))*cluster_size < int64(size) {
      f.Close ()
      return nil,fmt.Errorf ( "Cluster chain is truncated: %d clusters"+
        " for %d bytes", len(chain), size )
    }
  }

  ret := _FAT12_FileReader{
    f: f,
    img: img,
    data_offset: data_offset,
    cluster_size: cluster_size,
    cluster_data: make ( []byte, cluster_size ),
    pos: cluster_size, // Força la lectura del primer cluster
    chain: chain,
    remain: size,
  }

  return &ret,nil

} // end GetFileReader


func (self *_FAT12_DirectoryIter) GetName() string {
  return self.it.getName ()
} // end GetName


func (self *_FAT12_DirectoryIter) GetSize() int64 {
  return int64(self.it.getSize ())
} // end GetSize


func (self *_FAT12_DirectoryIter) GetLoadAddress() uint16 {
  return self.it.getLoadAddress ()
} // end GetLoadAddress


func (self *_FAT12_DirectoryIter) List(file io.Writer) error {
  return self.it.list ( file )
}


func (self *_FAT12_DirectoryIter) Next() error {

  self.it.next ()
  for ; !self.it.end () && self.it.skip (); self.it.next () {
  }

  return nil

} // end Next


func (self *_FAT12_DirectoryIter) Type() int {

  attr := self.it.getAttributes ()
  // Els fitxers de sistema, ocults o de només lectura són fitxers
  if attr == FAT_DIR_LFN || (attr&FAT_DIR_VOLUME_ID) != 0 {
    return DIRECTORY_ITER_TYPE_SPECIAL
  } else if (attr&FAT_DIR_DIRECTORY) != 0 {
    return DIRECTORY_ITER_TYPE_DIR
  } else {
    // El firmware del DD-001 no sempre posa el bit d'arxiu
    return DIRECTORY_ITER_TYPE_FILE
  }

} // end Type
