package assets

import (
	"embed"
)

//go:embed blocks/*.tmx
var blocksFS embed.FS

// BlocksFS exposes the embedded block templates; callers may substitute an
// os.DirFS during development to edit templates without rebuilding.
func BlocksFS() embed.FS { return blocksFS }
