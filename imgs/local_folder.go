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
 *  local_folder.go - Carpeta local. S'utilitza per a les carpetes
 *                    on es deixen els fitxers extrets.
 *
 */

package imgs

import (
  "fmt"
  "io"
  "os"
  "path/filepath"
  "sort"
)


/****************/
/* LOCAL FOLDER */
/****************/

type _LocalFolder struct {

  file_name string

}


func newLocalFolder(file_name string) (*_LocalFolder,error) {

  ret := _LocalFolder{
    file_name: file_name,
  }

  return &ret,nil

} // end newLocalFolder


// Obri (i crea si cal) una carpeta local.
func OpenFolder(dir_name string) (Directory,error) {

  if err := os.MkdirAll ( dir_name, 0777 ); err != nil {
    return nil,err
  }
  img,_ := newLocalFolder ( dir_name )

  return img.GetRootDirectory ()

} // end OpenFolder


func (self *_LocalFolder) PrintInfo(file io.Writer, prefix string) error {

  fmt.Fprintf ( file, "%sLOCAL FOLDER: %s\n", prefix, self.file_name )

  return nil

} // end PrintInfo


func (self *_LocalFolder) GetRootDirectory() (Directory,error) {

  ret := _LocalFolder_Directory{
    img: self,
    dir_name: self.file_name,
  }

  return &ret,nil

} // end GetRootDirectory


/**************************/
/* LOCAL FOLDER DIRECTORY */
/**************************/

type _LocalFolder_Directory struct {

  img      *_LocalFolder
  dir_name string

}


func (self *_LocalFolder_Directory) Begin() (DirectoryIter,error) {

  // Obté entrades, en ordre alfabètic
  entries,err := os.ReadDir ( self.dir_name )
  if err != nil { return nil,err }
  sort.Slice ( entries, func(i, j int) bool {
    return entries[i].Name () < entries[j].Name ()
  })

  ret := _LocalFolder_DirectoryIter{
    pdir: self,
    entries: entries,
    pos: 0,
  }

  return &ret,nil

} // end Begin


func (self *_LocalFolder_Directory) GetFileWriter(
  name string,
) (FileWriter,error) {

  // Trunca, perquè dos execucions han de deixar els mateixos bytes.
  new_path := filepath.Join ( self.dir_name, name )
  f,err := os.OpenFile ( new_path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666 )
  if err != nil { return nil,err }

  return f,nil

} // end GetFileWriter


// Torna el camí en el disc d'un fitxer de la carpeta.
func FolderPath(dir Directory, name string) (string,error) {

  ldir,ok := dir.(*_LocalFolder_Directory)
  if !ok {
    return "",fmt.Errorf ( "'%s' is not in a local folder", name )
  }

  return filepath.Join ( ldir.dir_name, name ),nil

} // end FolderPath


/*******************************/
/* LOCAL FOLDER DIRECTORY ITER */
/*******************************/

type _LocalFolder_DirectoryIter struct {

  pdir    *_LocalFolder_Directory  // Directori pare
  entries []os.DirEntry            // Entrades actuals
  pos     int                      // Posició

}


func (self *_LocalFolder_DirectoryIter) CompareToName(name string) bool {
  return self.entries[self.pos].Name () == name
} // end CompareToName


func (self *_LocalFolder_DirectoryIter) End() bool {
  return self.pos>=len(self.entries)
} // end End


func (self *_LocalFolder_DirectoryIter) GetFileReader() (FileReader,error) {

  path := filepath.Join ( self.pdir.dir_name, self.entries[self.pos].Name () )
  f,err := os.Open ( path )
  if err != nil { return nil,err }

  return f,nil

} // end GetFileReader


func (self *_LocalFolder_DirectoryIter) GetName() string {
  return self.entries[self.pos].Name ()
} // end GetName


func (self *_LocalFolder_DirectoryIter) GetSize() int64 {
  info,err := self.entries[self.pos].Info ()
  if err != nil { return -1 }
  return info.Size ()
} // end GetSize


func (self *_LocalFolder_DirectoryIter) GetLoadAddress() uint16 {
  return 0
} // end GetLoadAddress


func (self *_LocalFolder_DirectoryIter) List(file io.Writer) error {
  _,err := fmt.Fprintf ( file, "%10d  %s\n",
    self.GetSize (), self.GetName () )
  return err
} // end List


func (self *_LocalFolder_DirectoryIter) Next() error {
  self.pos++
  return nil
} // end Next


func (self *_LocalFolder_DirectoryIter) Type() int {

  fmode := self.entries[self.pos].Type ()
  if fmode.IsDir () {
    return DIRECTORY_ITER_TYPE_DIR
  } else if fmode.IsRegular () {
    return DIRECTORY_ITER_TYPE_FILE
  } else {
    return DIRECTORY_ITER_TYPE_SPECIAL
  }

} // end Type
