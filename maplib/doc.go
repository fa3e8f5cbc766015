// Package maplib extends Go maps with merging, pair conversion, random
// selection, key filtering and renaming, unique key generation and value
// clamping.
package maplib
