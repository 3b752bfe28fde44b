package broken

import _ "embed"

//go:embed bad.js
var Bad string
