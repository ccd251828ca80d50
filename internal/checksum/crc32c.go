// Package checksum provides the CRC32C (Castagnoli) checksum used to
// protect every framed section of an SST: data blocks, index blocks
// and the properties section.
package checksum

import "hash/crc32"

// table is the Castagnoli polynomial table.
var table = crc32.MakeTable(crc32.Castagnoli)

// Value computes the CRC32C checksum of data.
func Value(data []byte) uint32 {
	return crc32.Checksum(data, table)
}
