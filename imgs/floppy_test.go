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
  "errors"
  "os"
  "path/filepath"
  "strings"
  "testing"
)


type testFile struct {
  name string
  addr uint16
  data []byte
}


func pattern(n int, seed byte) []byte {
  ret := make ( []byte, n )
  for i := range ret {
    ret[i]= seed + byte(i*7)
  }
  return ret
}


// Crea una imatge de 720K amb els fitxers indicats.
func newTestFloppy(t *testing.T, files []testFile) string {

  t.Helper ()

  path := filepath.Join ( t.TempDir (), "dd001.img" )
  if err := FormatFloppy720 ( path, "test" ); err != nil {
    t.Fatalf ( "FormatFloppy720: %v", err )
  }
  img,err := NewImage ( path )
  if err != nil {
    t.Fatalf ( "NewImage: %v", err )
  }
  dir,err := img.GetRootDirectory ()
  if err != nil {
    t.Fatalf ( "GetRootDirectory: %v", err )
  }
  for _,tf := range files {
    f,err := dir.GetFileWriter ( tf.name )
    if err != nil {
      t.Fatalf ( "GetFileWriter(%s): %v", tf.name, err )
    }
    f.(LoadAddressSetter).SetLoadAddress ( tf.addr )
    if _,err := f.Write ( tf.data ); err != nil {
      t.Fatalf ( "Write(%s): %v", tf.name, err )
    }
    if err := f.Close (); err != nil {
      t.Fatalf ( "Close(%s): %v", tf.name, err )
    }
  }

  return path

} // end newTestFloppy


var testFiles = []testFile{
  {"BOOT.EXE", 0x1000, pattern ( 3000, 1 )},
  {"MULT.ASC", 0x0000, []byte("GUTZ.EXE 0800\r\nFIRE.PRG 1000\r\n")},
  {"EMPTY.DAT", 0x2000, []byte{}},
  {"FIRE.PRG", 0x0801, pattern ( 1024, 9 )},
}


func TestListFiles(t *testing.T) {

  fl,err := OpenFloppy ( newTestFloppy ( t, testFiles ) )
  if err != nil {
    t.Fatalf ( "OpenFloppy: %v", err )
  }
  entries,err := fl.ListFiles ( "/" )
  if err != nil {
    t.Fatalf ( "ListFiles: %v", err )
  }
  if len(entries) != len(testFiles) {
    t.Fatalf ( "got %d entries, want %d", len(entries), len(testFiles) )
  }
  for i,tf := range testFiles {
    want := DirEntry{
      Name: tf.name,
      Size: int64(len(tf.data)),
      LoadAddress: tf.addr,
    }
    if entries[i] != want {
      t.Errorf ( "entry %d = %+v, want %+v", i, entries[i], want )
    }
  }

  if _,err := fl.ListFiles ( "/GAMES" ); err == nil {
    t.Error ( "ListFiles(/GAMES) should fail" )
  }

} // end TestListFiles


func TestReadFile(t *testing.T) {

  fl,err := OpenFloppy ( newTestFloppy ( t, testFiles ) )
  if err != nil {
    t.Fatalf ( "OpenFloppy: %v", err )
  }
  for _,tf := range testFiles {
    t.Run ( tf.name, func(t *testing.T) {

      raw,err := fl.ReadFile ( tf.name, false )
      if err != nil {
        t.Fatalf ( "ReadFile: %v", err )
      }
      if !bytes.Equal ( raw, tf.data ) {
        t.Errorf ( "raw data differs: got %d bytes, want %d",
          len(raw), len(tf.data) )
      }

      prefixed,err := fl.ReadFile ( strings.ToLower ( tf.name ), true )
      if err != nil {
        t.Fatalf ( "ReadFile with load address: %v", err )
      }
      if len(prefixed) != len(tf.data)+2 {
        t.Fatalf ( "got %d bytes, want %d", len(prefixed), len(tf.data)+2 )
      }
      if prefixed[0] != byte(tf.addr) || prefixed[1] != byte(tf.addr>>8) {
        t.Errorf ( "prefix = %02x %02x, want load address %04x",
          prefixed[0], prefixed[1], tf.addr )
      }
      if !bytes.Equal ( prefixed[2:], tf.data ) {
        t.Error ( "prefixed data differs from raw data" )
      }

    })
  }

} // end TestReadFile


func TestReadFileNotFound(t *testing.T) {

  fl,err := OpenFloppy ( newTestFloppy ( t, testFiles ) )
  if err != nil {
    t.Fatalf ( "OpenFloppy: %v", err )
  }
  _,err= fl.ReadFile ( "NINJA.EXE", true )
  var rerr *FileReadError
  if !errors.As ( err, &rerr ) || !errors.Is ( err, ErrFileNotFound ) {
    t.Fatalf ( "got %v, want FileReadError wrapping ErrFileNotFound", err )
  }

} // end TestReadFileNotFound


// Modifica la FAT de la imatge.
func patchFAT(t *testing.T, path string, patch func(fat _FAT12_Table)) {

  t.Helper ()

  img,err := newFAT12 ( path )
  if err != nil {
    t.Fatalf ( "newFAT12: %v", err )
  }
  f,err := os.OpenFile ( path, os.O_RDWR, 0 )
  if err != nil {
    t.Fatal ( err )
  }
  defer f.Close ()
  fat,err := img.fGetFAT ( f )
  if err != nil {
    t.Fatalf ( "fGetFAT: %v", err )
  }
  patch ( fat )
  img.fat_modified= true
  if err := img.fWriteFAT ( f ); err != nil {
    t.Fatalf ( "fWriteFAT: %v", err )
  }

} // end patchFAT


func TestReadFileCorruptChain(t *testing.T) {

  // BOOT.EXE ocupa els clusters 2, 3 i 4.
  tests := []struct{
    name  string
    patch func(fat _FAT12_Table)
  }{
    {"truncated", func(fat _FAT12_Table) { fat.write ( 2, FAT12_END_CHAIN ) }},
    {"loop", func(fat _FAT12_Table) { fat.write ( 3, 2 ) }},
    {"bad cluster", func(fat _FAT12_Table) { fat.write ( 3, FAT12_BAD_CLUSTER ) }},
    {"reserved", func(fat _FAT12_Table) { fat.write ( 2, 1 ) }},
    {"out of bounds", func(fat _FAT12_Table) { fat.write ( 2, 0xFF0 ) }},
  }
  for _,tc := range tests {
    t.Run ( tc.name, func(t *testing.T) {
      path := newTestFloppy ( t, testFiles[:1] )
      patchFAT ( t, path, tc.patch )
      fl,err := OpenFloppy ( path )
      if err != nil {
        t.Fatalf ( "OpenFloppy: %v", err )
      }
      _,err= fl.ReadFile ( "BOOT.EXE", false )
      var rerr *FileReadError
      if !errors.As ( err, &rerr ) {
        t.Fatalf ( "got %v, want FileReadError", err )
      }
      if rerr.Name != "BOOT.EXE" {
        t.Errorf ( "error names '%s'", rerr.Name )
      }
    })
  }

} // end TestReadFileCorruptChain


func TestOpenFloppyErrors(t *testing.T) {

  dir := t.TempDir ()

  // Imatge FAT12 vàlida però sense la grandària de 720K
  small := filepath.Join ( dir, "small.img" )
  valid := newTestFloppy ( t, nil )
  data,err := os.ReadFile ( valid )
  if err != nil {
    t.Fatal ( err )
  }
  data= data[:FLOPPY_720K_SIZE/2]
  data[0x13],data[0x14]= 0xa0,0x02 // 720 sectors
  if err := os.WriteFile ( small, data, 0666 ); err != nil {
    t.Fatal ( err )
  }

  garbage := filepath.Join ( dir, "garbage.img" )
  if err := os.WriteFile ( garbage, make ( []byte, 4096 ), 0666 ); err != nil {
    t.Fatal ( err )
  }

  for _,path := range []string{
    filepath.Join ( dir, "missing.img" ),
    small,
    garbage,
    dir,
  } {
    _,err := OpenFloppy ( path )
    var oerr *ImageOpenError
    if !errors.As ( err, &oerr ) {
      t.Errorf ( "OpenFloppy(%s) = %v, want ImageOpenError", path, err )
    } else if oerr.Path != path {
      t.Errorf ( "ImageOpenError.Path = %s, want %s", oerr.Path, path )
    }
  }

} // end TestOpenFloppyErrors


func TestFormatFloppy720(t *testing.T) {

  path := newTestFloppy ( t, nil )
  ftype,err := Detect ( path )
  if err != nil || ftype != TYPE_FAT12 {
    t.Fatalf ( "Detect = %d, %v; want FAT12", ftype, err )
  }
  fl,err := OpenFloppy ( path )
  if err != nil {
    t.Fatalf ( "OpenFloppy: %v", err )
  }
  entries,err := fl.ListFiles ( "/" )
  if err != nil || len(entries) != 0 {
    t.Fatalf ( "ListFiles = %v, %v; want empty", entries, err )
  }
  var buf bytes.Buffer
  if err := fl.PrintInfo ( &buf, "" ); err != nil {
    t.Fatalf ( "PrintInfo: %v", err )
  }
  if !strings.Contains ( buf.String (), "TEST" ) {
    t.Errorf ( "volume label missing from info:\n%s", buf.String () )
  }

} // end TestFormatFloppy720


func TestOverwriteFile(t *testing.T) {

  path := newTestFloppy ( t, testFiles )
  img,err := NewImage ( path )
  if err != nil {
    t.Fatal ( err )
  }
  dir,err := img.GetRootDirectory ()
  if err != nil {
    t.Fatal ( err )
  }
  f,err := dir.GetFileWriter ( "boot.exe" )
  if err != nil {
    t.Fatalf ( "GetFileWriter: %v", err )
  }
  f.(LoadAddressSetter).SetLoadAddress ( 0xC000 )
  if _,err := f.Write ( []byte("short") ); err != nil {
    t.Fatal ( err )
  }
  if err := f.Close (); err != nil {
    t.Fatal ( err )
  }

  fl,err := OpenFloppy ( path )
  if err != nil {
    t.Fatal ( err )
  }
  entries,err := fl.ListFiles ( "/" )
  if err != nil {
    t.Fatal ( err )
  }
  if len(entries) != len(testFiles) {
    t.Fatalf ( "got %d entries, want %d", len(entries), len(testFiles) )
  }
  want := DirEntry{Name: "BOOT.EXE", Size: 5, LoadAddress: 0xC000}
  if entries[0] != want {
    t.Errorf ( "entry = %+v, want %+v", entries[0], want )
  }
  data,err := fl.ReadFile ( "BOOT.EXE", true )
  if err != nil {
    t.Fatal ( err )
  }
  if !bytes.Equal ( data, []byte("\x00\xc0short") ) {
    t.Errorf ( "data = %q", data )
  }

} // end TestOverwriteFile


// Canvia els atributs d'una entrada del directori arrel.
func setAttr(t *testing.T, path string, name string, attr byte) {

  t.Helper ()

  raw,err := FAT_GetFileName83 ( name )
  if err != nil {
    t.Fatal ( err )
  }
  data,err := os.ReadFile ( path )
  if err != nil {
    t.Fatal ( err )
  }
  root := FAT12_BR_SIZE +
    FLOPPY_720K_NUM_FAT*FLOPPY_720K_SECS_PER_FAT*FLOPPY_720K_BYTES_PER_SEC
  end := root + FLOPPY_720K_ROOT_ENTRIES*FAT_DIR_ENTRY_SIZE
  for pos := root; pos < end; pos+= FAT_DIR_ENTRY_SIZE {
    if bytes.Equal ( data[pos:pos+11], raw ) {
      data[pos+11]= attr
      if err := os.WriteFile ( path, data, 0666 ); err != nil {
        t.Fatal ( err )
      }
      return
    }
  }
  t.Fatalf ( "%s not found in the root directory", name )

} // end setAttr


func TestListFilesAttributes(t *testing.T) {

  tests := []struct{
    name string
    attr byte
  }{
    {"archive+system+hidden+read-only", 0x27},
    {"system", FAT_DIR_SYSTEM},
    {"hidden", FAT_DIR_HIDDEN},
    {"read-only", FAT_DIR_READ_ONLY},
    {"none", 0x00},
  }
  for _,tc := range tests {
    t.Run ( tc.name, func(t *testing.T) {

      path := newTestFloppy ( t, testFiles )
      setAttr ( t, path, "BOOT.EXE", tc.attr )
      fl,err := OpenFloppy ( path )
      if err != nil {
        t.Fatalf ( "OpenFloppy: %v", err )
      }
      entries,err := fl.ListFiles ( "/" )
      if err != nil {
        t.Fatalf ( "ListFiles: %v", err )
      }
      if len(entries) != len(testFiles) {
        t.Fatalf ( "got %d entries, want %d: %+v", len(entries),
          len(testFiles), entries )
      }
      want := DirEntry{Name: "BOOT.EXE", Size: 3000, LoadAddress: 0x1000}
      if entries[0] != want {
        t.Errorf ( "entry = %+v, want %+v", entries[0], want )
      }
      data,err := fl.ReadFile ( "BOOT.EXE", false )
      if err != nil {
        t.Fatalf ( "ReadFile: %v", err )
      }
      if !bytes.Equal ( data, testFiles[0].data ) {
        t.Error ( "data differs" )
      }

    })
  }

} // end TestListFilesAttributes


func TestListFilesSkipsVolumeLabel(t *testing.T) {

  path := newTestFloppy ( t, testFiles )
  setAttr ( t, path, "MULT.ASC", FAT_DIR_VOLUME_ID|FAT_DIR_ARCHIVE )
  fl,err := OpenFloppy ( path )
  if err != nil {
    t.Fatalf ( "OpenFloppy: %v", err )
  }
  entries,err := fl.ListFiles ( "/" )
  if err != nil {
    t.Fatalf ( "ListFiles: %v", err )
  }
  if len(entries) != len(testFiles)-1 {
    t.Fatalf ( "got %d entries, want %d", len(entries), len(testFiles)-1 )
  }
  for _,e := range entries {
    if e.Name == "MULT.ASC" {
      t.Errorf ( "volume label listed as a file: %+v", e )
    }
  }

} // end TestListFilesSkipsVolumeLabel
