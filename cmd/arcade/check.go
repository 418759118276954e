package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox-arcade/internal/config"
)

var errSceneInvalid = errors.New("scene has invalid objects")

var checkCmd = &cobra.Command{
	Use:   "check <scene.yaml>",
	Short: "Validate a scene file",
	Long: `Build every hit box in a scene file and report what was built.

Each object's vertices go through the convex hull check, so a concave
or degenerate polygon is reported with its index and name. Objects that
already overlap at load time are listed so walls can be tidied up.

Examples:
  arcade check ./arena.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sc, err := config.LoadScene(args[0])
	if err != nil {
		return err
	}

	objects, buildErr := sc.Build(sc.Width, sc.Height)
	templates, tplErr := sc.Templates(1)

	fmt.Fprintf(out, "Scene %q (%gx%g)\n\n", sc.Name, sc.Width, sc.Height)
	for i, o := range objects {
		c := o.HitBox.Center()
		fmt.Fprintf(out, "  %-3d %-12s %-8s %-8s center (%.2f, %.2f)\n",
			i, o.Config.Name, o.Config.Tag, o.HitBox.Kind(), c.X, c.Y)
	}
	for _, t := range templates {
		fmt.Fprintf(out, "  tpl %-12s %-8s %-8s\n", t.Config.Name, "enemy", t.HitBox.Kind())
	}

	fmt.Fprintln(out)
	overlaps := 0
	for i := range objects {
		for j := i + 1; j < len(objects); j++ {
			if objects[i].HitBox.CollidesWith(objects[j].HitBox) {
				overlaps++
				fmt.Fprintf(out, "  overlap: %d (%s) and %d (%s)\n",
					i, objects[i].Config.Name, j, objects[j].Config.Name)
			}
		}
	}
	if overlaps == 0 {
		fmt.Fprintln(out, "  no overlapping objects")
	}

	if err := errors.Join(buildErr, tplErr); err != nil {
		fmt.Fprintf(out, "\n%v\n", err)
		return errSceneInvalid
	}
	fmt.Fprintln(out, "\nok")
	return nil
}
