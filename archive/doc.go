// Package archive decodes supported container formats into hashable entries.
//
// Recognition is by file extension against a closed table (zip, tar,
// tar.gz/tgz, tar.bz2, tar.xz, tar.zst); content sniffing is deliberately
// avoided. Each format gets a Walker that yields members lazily: the tar
// family streams through a decompression layer, zip seeks to its central
// directory. Nested archives are never expanded — a member that happens to
// be an archive itself is hashed as opaque bytes.
package archive
