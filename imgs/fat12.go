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
 *  fat12.go - Taula FAT12.
 *
 */

package imgs

import (
  "fmt"
  "io"

  "github.com/adriagipas/dd001conv/utils"
)


/***************/
/* FAT12 TABLE */
/***************/

const FAT12_BAD_CLUSTER = 0xFF7
const FAT12_END_CHAIN   = 0xFFF

type _FAT12_Table []byte


func (self _FAT12_Table) length() uint16 {
  return uint16((len(self)*2)/3)
}


func (self _FAT12_Table) get(ind uint16) uint16 {

  var ret uint16

  pos := (3*int(ind))/2
  if (ind&0x1) == 0 { // Parell
    ret= uint16(self[pos]) | (uint16(self[pos+1]&0xF)<<8)
  } else { // Imparell
    ret= uint16(self[pos]>>4) | (uint16(self[pos+1])<<4)
  }

  return ret

} // end get


func (self _FAT12_Table) write(ind uint16, val uint16) {

  pos := (3*int(ind))/2
  if (ind&0x1) == 0 { // Parell
    self[pos]= uint8(val)
    self[pos+1]= (self[pos+1]&0xF0) | (uint8(val>>8)&0x0F)
  } else { // Imparell
    self[pos]= (self[pos]&0x0F) | (uint8(val&0x0F)<<4)
    self[pos+1]= uint8(val>>4)
  }

} // end write


// Recorre la cadena que comença en FIRST i torna els clusters en
// ordre. Falla si la cadena passa per clusters reservats, fora de
// rang, marcats com a dolents o si fa un bucle.
func (self _FAT12_Table) chainOf(first uint16) ([]uint16,error) {

  ret := []uint16{}
  seen := make ( map[uint16]bool )
  for c := first; c < FAT12_BAD_CLUSTER; c= self.get ( c ) {
    if c <= 1 {
      return nil,fmt.Errorf ( "%d is a reserved cluster", c )
    } else if c >= self.length () {
      return nil,fmt.Errorf ( "Cluster %d is out of bounds", c )
    } else if seen[c] {
      return nil,fmt.Errorf ( "Loop in cluster chain started in cluster %d",
        first )
    }
    seen[c]= true
    ret= append ( ret, c )
    if next := self.get ( c ); next == FAT12_BAD_CLUSTER {
      return nil,fmt.Errorf ( "Found bad cluster in a chain started"+
        " in cluster %d", first )
    }
  }

  return ret,nil

} // end chainOf


func (self _FAT12_Table) fPrintInfo(

  file   io.Writer,
  prefix string,
  br     *_FAT12_BR,

)  error {

  // Conta clusters disponibles i fitxers
  var bad, free, nfiles int
  total := self.length () - 2
  for i := uint16(2); i < self.length(); i++ {
    e := self.get ( i )
    if e == 0 {
      free++
    } else if e == FAT12_BAD_CLUSTER {
      bad++
    } else if e > FAT12_BAD_CLUSTER {
      nfiles++
    }
  }

  // Imprimeix informació
  cluster_size := uint64(br.bpb.bytes_per_sec) * uint64(br.bpb.secs_per_clu)
  fmt.Fprintln ( file, "" )
  fmt.Fprintf ( file, "%sUsage\n", prefix )
  fmt.Fprintf ( file, "%s-----\n\n", prefix )
  fmt.Fprintf ( file, "%s  * NUM. FILES:    %d\n", prefix, nfiles )
  fmt.Fprintf ( file, "%s  * FREE CLUSTERS: %d (%.1f%% [%s])\n",
    prefix, free, 100*(float32(free)/float32(total)),
    utils.NumBytesToStr ( uint64(free)*cluster_size ) )
  fmt.Fprintf ( file, "%s  * BAD CLUSTERS:  %d (%.1f%% [%s])\n",
    prefix, bad, 100*(float32(bad)/float32(total)),
    utils.NumBytesToStr ( uint64(bad)*cluster_size ) )

  return nil

} // end fPrintInfo
