package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/northwind-studio/website/internal/cli"
	"github.com/northwind-studio/website/internal/config"
)

//go:embed static
var staticFS embed.FS

func main() {
	config.LoadDotEnv()

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("failed to access static files: ", err)
	}
	cli.Execute(static)
}
