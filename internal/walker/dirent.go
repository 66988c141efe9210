package walker

import "unsafe"

// File type constants from dirent.h.
const (
	DT_UNKNOWN = 0
	DT_DIR     = 4
	DT_REG     = 8
	DT_LNK     = 10
)

// Dirent is a parsed linux_dirent64 entry.
type Dirent struct {
	Name string
	Type uint8
}

// direntHeaderLen is the fixed part of linux_dirent64:
// d_ino (8) + d_off (8) + d_reclen (2) + d_type (1).
const direntHeaderLen = 19

// ParseDirents parses raw getdents64 output into Dirent structs, skipping
// "." and "..". dst is reused across calls to avoid reallocation; pass nil
// on the first call.
func ParseDirents(buf []byte, n int, dst []Dirent) []Dirent {
	entries := dst[:0]

	for offset := 0; offset+direntHeaderLen <= n; {
		reclen := *(*uint16)(unsafe.Pointer(&buf[offset+16]))
		if reclen == 0 {
			break
		}
		dtype := buf[offset+18]

		nameEnd := min(offset+int(reclen), n)
		nameBytes := buf[offset+direntHeaderLen : nameEnd]
		nameLen := 0
		for nameLen < len(nameBytes) && nameBytes[nameLen] != 0 {
			nameLen++
		}
		name := string(nameBytes[:nameLen])

		if name != "." && name != ".." {
			entries = append(entries, Dirent{Name: name, Type: dtype})
		}
		offset += int(reclen)
	}
	return entries
}
