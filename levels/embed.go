package levels

import "embed"

//go:embed *.yaml
var LevelsFS embed.FS

// Default is the level loaded when no name is given.
const Default = "default.yaml"
