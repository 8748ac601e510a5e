package web

import "embed"

// TemplatesFS contém os templates HTML renderizados no servidor.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS contém os assets estáticos (css/js).
//
//go:embed static/*
var StaticFS embed.FS
