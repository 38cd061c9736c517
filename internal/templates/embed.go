package templates

import "embed"

//go:embed slash/*.md
var slashFS embed.FS

//go:embed project/*
var projectFS embed.FS
