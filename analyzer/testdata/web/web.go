package web

import "embed"

// Frontend holds the application sources.
//
//go:embed frontend
var Frontend embed.FS

//go:embed frontend/App.vue frontend/gen.js
var Entry embed.FS
