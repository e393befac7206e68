// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

// Command glinfo creates a hidden window, probes the GL context the way
// the dispatch layer does and prints the capability report: version,
// driver classes, known extensions and which workarounds would be
// active.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"glctx.org"
	"glctx.org/internal/gl"
)

func init() {
	// GLFW needs the main thread.
	runtime.LockOSThread()
}

func main() {
	app := &cli.App{
		Name:  "glinfo",
		Usage: "report OpenGL capabilities as seen by the dispatch layer",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "core",
				Usage: "request a core profile context",
				Value: true,
			},
			&cli.IntFlag{
				Name:  "major",
				Usage: "requested context major version",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "minor",
				Usage: "requested context minor version",
				Value: 3,
			},
			&cli.StringSliceFlag{
				Name:  "disable-workaround",
				Usage: "disable a driver workaround by name (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "disable-extension",
				Usage: "pretend an extension is absent (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress the context creation log",
			},
			&cli.BoolFlag{
				Name:  "extensions",
				Usage: "list every known extension with its status",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "glinfo:", err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cctx.Int("major"))
	glfw.WindowHint(glfw.ContextVersionMinor, cctx.Int("minor"))
	if cctx.Bool("core") {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	win, err := glfw.CreateWindow(64, 64, "glinfo", nil, nil)
	if err != nil {
		return fmt.Errorf("creating context: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("loading GL entry points: %w", err)
	}

	c, err := glctx.New(gl.NewFunctions(), glctx.Options{
		DisabledWorkarounds: cctx.StringSlice("disable-workaround"),
		DisabledExtensions:  cctx.StringSlice("disable-extension"),
		Quiet:               cctx.Bool("quiet"),
	})
	if err != nil {
		return err
	}
	defer c.Release()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.Append([]string{"Renderer", c.Renderer()})
	table.Append([]string{"Vendor", c.Vendor()})
	table.Append([]string{"Version", c.VersionString()})
	table.Append([]string{"Probed version", c.Version().String()})
	table.Append([]string{"Context flags", c.Flags().String()})
	table.Append([]string{"Detected driver", c.DetectedDriver().String()})
	table.Render()

	if cctx.Bool("extensions") {
		printExtensions(c)
	}
	return nil
}

func printExtensions(c *glctx.Context) {
	exts := c.KnownProfileExtensions()
	slices.SortFunc(exts, func(a, b glctx.Extension) int {
		return strings.Compare(a.Name(), b.Name())
	})

	yes := color.New(color.FgGreen).SprintFunc()
	no := color.New(color.FgRed).SprintFunc()
	fmt.Println()
	for _, e := range exts {
		if c.IsExtensionSupported(e) {
			fmt.Printf("%s %s\n", yes("+"), e.Name())
		} else {
			fmt.Printf("%s %s\n", no("-"), e.Name())
		}
	}
}
