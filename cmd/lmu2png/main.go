package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/lmu2png"
	"github.com/bodgit/lmu2png/resource"
	"github.com/bodgit/lmu2png/rpg"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB       = "chipsets.db"
	defaultDatabase = "RPG_RT.json"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func graphicFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "database",
			Aliases: []string{"d"},
			Usage:   "database to use, either a JSON export or a chipset database made by import; defaults to " + defaultDatabase + " in the map folder",
		},
		&cli.BoolFlag{
			Name:    "no-background",
			Aliases: []string{"B"},
			Usage:   "do not draw the parallax background",
		},
		&cli.BoolFlag{
			Name:    "no-lowertiles",
			Aliases: []string{"L"},
			Usage:   "do not draw lower layer tiles",
		},
		&cli.BoolFlag{
			Name:    "no-uppertiles",
			Aliases: []string{"U"},
			Usage:   "do not draw upper layer tiles",
		},
		&cli.BoolFlag{
			Name:    "no-events",
			Aliases: []string{"E"},
			Usage:   "do not draw events",
		},
		&cli.BoolFlag{
			Name:    "ignore-conditions",
			Aliases: []string{"C"},
			Usage:   "always draw the first page of an event instead of the last page with no conditions",
		},
		&cli.BoolFlag{
			Name:    "simulate-movement",
			Aliases: []string{"M"},
			Usage:   "for event pages with certain animation types, draw the middle frame instead of the frame specified for the page",
		},
	}
}

func config(c *cli.Context) lmu2png.Config {
	return lmu2png.Config{
		NoBackground:     c.Bool("no-background"),
		NoLowerTiles:     c.Bool("no-lowertiles"),
		NoUpperTiles:     c.Bool("no-uppertiles"),
		NoEvents:         c.Bool("no-events"),
		IgnoreConditions: c.Bool("ignore-conditions"),
		SimulateMovement: c.Bool("simulate-movement"),
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(os.Stderr, "", 0)
	if c.Bool("quiet") {
		logger.SetOutput(ioutil.Discard)
	}
	return logger
}

func newFinder(c *cli.Context, project string) *resource.Finder {
	var rtp []string
	for _, name := range []string{"rtp2k", "rtp2k3"} {
		rtp = append(rtp, resource.SplitPath(c.String(name))...)
	}
	return resource.NewFinder(project, rtp...)
}

type closer interface {
	Close() error
}

// openChipsets opens either a JSON database export or a chipset database.
func openChipsets(file string) (lmu2png.Chipsets, error) {
	if strings.ToLower(filepath.Ext(file)) == ".json" {
		db, err := rpg.LoadDatabase(file)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	if _, err := os.Stat(file); err != nil {
		return nil, err
	}
	db, err := lmu2png.NewChipsetDB(file)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func closeChipsets(chipsets lmu2png.Chipsets) {
	if c, ok := chipsets.(closer); ok {
		c.Close()
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "lmu2png"
	app.Usage = "Render RPG Maker 2000/2003 maps to images"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "rtp2k",
			EnvVars: []string{"RPG2K_RTP_PATH"},
			Usage:   "RPG Maker 2000 RTP directories",
		},
		&cli.StringFlag{
			Name:    "rtp2k3",
			EnvVars: []string{"RPG2K3_RTP_PATH"},
			Usage:   "RPG Maker 2003 RTP directories",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "do not report missing resources",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Render a map to an image",
			Description: "The output format is chosen from the output file extension, .png or .xyz.",
			ArgsUsage:   "MAPFILE",
			Flags: append(graphicFlags(),
				&cli.StringFlag{
					Name:    "chipset",
					Aliases: []string{"c"},
					Usage:   "chipset image to use; if unspecified, will be read from the database",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file (defaults to map name)",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce a PNG to at most this many colors",
				},
			),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				file := c.Args().First()

				m, err := rpg.LoadMap(file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				dir := filepath.Dir(file)
				finder := newFinder(c, dir)
				r := lmu2png.New(finder, finder, newLogger(c))

				var chipsets lmu2png.Chipsets
				if c.String("chipset") == "" {
					database := c.String("database")
					if database == "" {
						database = filepath.Join(dir, defaultDatabase)
					}
					if chipsets, err = openChipsets(database); err != nil {
						return cli.NewExitError(err, 1)
					}
					defer closeChipsets(chipsets)
				}

				img, err := r.RenderMap(m, chipsets, c.String("chipset"), config(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				output := c.String("output")
				if output == "" {
					output = strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
				}

				if err := lmu2png.Save(output, img, c.Int("colors")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Render every map in a project",
			Description: "Each MapXXXX.json file is rendered to MapXXXX.png alongside it.",
			ArgsUsage:   "DIRECTORY",
			Flags:       graphicFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				dir := c.Args().First()

				database := c.String("database")
				if database == "" {
					database = filepath.Join(dir, defaultDatabase)
				}
				chipsets, err := openChipsets(database)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeChipsets(chipsets)

				finder := newFinder(c, dir)
				r := lmu2png.New(finder, finder, newLogger(c))

				if err := r.RenderDirectory(dir, chipsets, config(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import the chipsets of a JSON database export",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"LMU2PNG_DB"},
					Value:   filepath.Join(cwd, defaultDB),
					Usage:   "path to chipset database",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := lmu2png.NewChipsetDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := db.ImportJSON(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
