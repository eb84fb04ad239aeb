package sitepreview

import "embed"

// EmbeddedAssets contains files shipped with the tool: the default
// stylesheet written into site roots that have none.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
