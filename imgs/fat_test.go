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
package imgs

import (
  "bytes"
  "testing"
)


func rawEntry(name string, ext string, attr byte, addr uint16, size uint32) []byte {

  ret := make ( []byte, FAT_DIR_ENTRY_SIZE )
  copy ( ret[0:8], []byte(name+"        ")[:8] )
  copy ( ret[8:11], []byte(ext+"   ")[:3] )
  ret[11]= attr
  ret[FAT_DIR_LOAD_ADDR_POS]= byte(addr)
  ret[FAT_DIR_LOAD_ADDR_POS+1]= byte(addr>>8)
  ret[26]= 2
  ret[28],ret[29],ret[30],ret[31]= byte(size),byte(size>>8),
    byte(size>>16),byte(size>>24)

  return ret

} // end rawEntry


func TestDecodeDirEntry(t *testing.T) {

  e,err := decodeDirEntry ( rawEntry ( "BOOT", "EXE", FAT_DIR_ARCHIVE,
    0x1000, 12345 ) )
  if err != nil {
    t.Fatalf ( "decodeDirEntry: %v", err )
  }
  if e.LoadAddr != 0x1000 || e.Size != 12345 || e.Cluster != 2 ||
    e.Attr != FAT_DIR_ARCHIVE {
    t.Errorf ( "decoded %+v", e )
  }
  if got := e.fileName (); got != "BOOT.EXE" {
    t.Errorf ( "fileName = %q", got )
  }

  if _,err := decodeDirEntry ( make ( []byte, 10 ) ); err == nil {
    t.Error ( "short entry should fail" )
  }

} // end TestDecodeDirEntry


func TestFileName(t *testing.T) {

  tests := []struct{
    name string
    ext  string
    want string
  }{
    {"MULT", "ASC", "MULT.ASC"},
    {"README", "", "README"},
    {"mouse0", "exe", "MOUSE0.EXE"},
    {"\x80A", "", "ÇA"},         // CP437
    {"\x05X", "", "ΣX"},         // 0xE5 escapat (σ)
  }
  for _,tc := range tests {
    e,err := decodeDirEntry ( rawEntry ( tc.name, tc.ext, 0, 0, 0 ) )
    if err != nil {
      t.Fatal ( err )
    }
    if got := e.fileName (); got != tc.want {
      t.Errorf ( "fileName(%q,%q) = %q, want %q", tc.name, tc.ext, got, tc.want )
    }
  }

} // end TestFileName


func TestDirectoryIterSkip(t *testing.T) {

  data := bytes.Join ( [][]byte{
    rawEntry ( "DD-001", "", FAT_DIR_VOLUME_ID, 0, 0 ),
    rawEntry ( "LONGNAME", "", FAT_DIR_LFN, 0, 0 ),
    rawEntry ( "\xe5OLD", "EXE", FAT_DIR_ARCHIVE, 0, 0 ),
    rawEntry ( "GUTZ", "EXE", 0, 0x0800, 100 ),
    make ( []byte, FAT_DIR_ENTRY_SIZE ),
    rawEntry ( "HIDDEN", "EXE", 0, 0, 0 ),
  }, nil )
  dir := _FAT12_Directory{data: data}

  names := []string{}
  it := dir.begin ()
  for ; !it.End (); it.Next () {
    names= append ( names, it.GetName () )
    if it.GetLoadAddress () != 0x0800 || it.GetSize () != 100 {
      t.Errorf ( "%s: load address %04x, size %d", it.GetName (),
        it.GetLoadAddress (), it.GetSize () )
    }
  }
  if len(names) != 1 || names[0] != "GUTZ.EXE" {
    t.Errorf ( "names = %v, want [GUTZ.EXE]", names )
  }

} // end TestDirectoryIterSkip


func TestFAT12Table(t *testing.T) {

  fat := _FAT12_Table(make ( []byte, 12 ))
  vals := []uint16{ 0xFF9, 0xFFF, 3, 0xFFF, 0xABC, 0x123, 0, 0xFF7 }
  for i,v := range vals {
    fat.write ( uint16(i), v )
  }
  for i,v := range vals {
    if got := fat.get ( uint16(i) ); got != v {
      t.Errorf ( "fat[%d] = %03x, want %03x", i, got, v )
    }
  }
  chain,err := fat.chainOf ( 2 )
  if err != nil || len(chain) != 2 || chain[0] != 2 || chain[1] != 3 {
    t.Errorf ( "chainOf(2) = %v, %v", chain, err )
  }

} // end TestFAT12Table


func TestGetFileName83(t *testing.T) {

  tests := []struct{
    in   string
    want string
    ok   bool
  }{
    {"boot.exe", "BOOT    EXE", true},
    {"MULT.ASC", "MULT    ASC", true},
    {"README", "README     ", true},
    {"TOOLONGNAME.EXE", "", false},
    {"BAD NAME.EXE", "", false},
    {"", "", false},
  }
  for _,tc := range tests {
    got,err := FAT_GetFileName83 ( tc.in )
    if (err == nil) != tc.ok {
      t.Errorf ( "FAT_GetFileName83(%q) error = %v", tc.in, err )
      continue
    }
    if tc.ok && string(got) != tc.want {
      t.Errorf ( "FAT_GetFileName83(%q) = %q, want %q", tc.in, got, tc.want )
    }
  }

} // end TestGetFileName83
