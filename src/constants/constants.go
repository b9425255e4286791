package constants

import "os"

// When true, components log every draw they make.
var Debug = os.Getenv("DEBUG") != ""
