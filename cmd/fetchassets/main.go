package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/voxel-terrain/internal/asset"
	"github.com/OCharnyshevich/voxel-terrain/pkg/atlas"
)

func main() {
	var (
		src   = flag.String("src", "", "texture pack source (go-getter address, e.g. git::https://host/repo.git//textures)")
		out   = flag.String("o", "./assets", "output dir path")
		check = flag.String("atlas", "", "atlas image inside the pack to verify after download")
		grid  = flag.Int("grid", atlas.DefaultGrid, "atlas tiles per side")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("source required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output dir path required")
		os.Exit(2)
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Error("clear output dir", "path", *out, "error", err)
		os.Exit(1)
	}

	log.Info("start downloading assets", "source", *src, "path", *out)
	if err := get.Get(*out, *src); err != nil {
		log.Error("download assets", "error", err)
		os.Exit(1)
	}
	log.Info("done downloading assets", "path", *out)

	if *check == "" {
		return
	}
	img, err := asset.Decode(filepath.Join(*out, *check))
	if err != nil {
		log.Error("verify atlas", "error", err)
		os.Exit(1)
	}
	at, err := atlas.WithImage(*grid, img)
	if err != nil {
		log.Error("verify atlas", "error", err)
		os.Exit(1)
	}
	log.Info("atlas ok", "file", *check, "size", img.Bounds().Dx(), "tiles", at.Tiles())
}
