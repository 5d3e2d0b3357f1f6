package fileutil

import "os"

// OwnerReadWrite is the file permission mode for documents written on behalf
// of the user, which may hold configuration secrets.
const OwnerReadWrite os.FileMode = 0o600
