// Command sippcli loads a .map file and a JSON obstacle-trajectory file,
// builds the corresponding search structures, runs one of the module's
// five algorithms by name, and prints the reconstructed path.
//
// This is the module's only main package and the only place every
// Core API function is exercised together end to end — the same role
// cmd/ fills in a library repo that otherwise exposes nothing but
// packages.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/MONICgh/sipp-go/arsipp"
	"github.com/MONICgh/sipp-go/astar"
	"github.com/MONICgh/sipp-go/catable"
	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/gridgraph"
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/mapio"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
	"github.com/MONICgh/sipp-go/safemap"
	"github.com/MONICgh/sipp-go/sipp"
	"github.com/MONICgh/sipp-go/wsipp"
	"github.com/MONICgh/sipp-go/wsippd"
)

func main() {
	var (
		mapPath       = flag.String("map", "", "path to a .map file (required)")
		obstaclesPath = flag.String("obstacles", "", "path to a JSON file containing []obstacle.Trajectory (optional)")
		scenPath      = flag.String("scen", "", "path to a .map.scen file providing start/goal (takes precedence over -start/-goal)")
		startFlag     = flag.String("start", "", "start cell as \"i,j\" (required unless -scen is given)")
		goalFlag      = flag.String("goal", "", "goal cell as \"i,j\" (required unless -scen is given)")
		algo          = flag.String("algo", "sipp", "algorithm to run: sipp, wsipp, wsippd, arsipp, astar")
		weight        = flag.Float64("weight", 1, "heuristic inflation weight (wsipp, wsippd) or starting weight (arsipp)")
		step          = flag.Float64("step", 0.5, "weight decrement per iteration (arsipp only)")
	)
	flag.Parse()

	if *mapPath == "" {
		log.Fatal("sippcli: -map is required")
	}

	g, err := loadGrid(*mapPath)
	if err != nil {
		log.Fatalf("sippcli: %v", err)
	}

	trajectories, err := loadTrajectories(*obstaclesPath)
	if err != nil {
		log.Fatalf("sippcli: %v", err)
	}

	start, goal, err := resolveEndpoints(*scenPath, *startFlag, *goalFlag)
	if err != nil {
		log.Fatalf("sippcli: %v", err)
	}

	if same, err := gridgraph.FromGrid(g).SameComponent(start.I, start.J, goal.I, goal.J); err != nil {
		log.Fatalf("sippcli: connectivity precheck: %v", err)
	} else if !same {
		log.Fatalf("sippcli: start %v and goal %v are not connected by any static path; no search can possibly find one", start, goal)
	}

	steps, err := run(*algo, g, trajectories, start, goal, *weight, *step)
	if err != nil {
		log.Fatalf("sippcli: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(steps); err != nil {
		log.Fatalf("sippcli: encoding path: %v", err)
	}
}

func loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer f.Close()

	free, err := mapio.ReadMap(f)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}

	g, err := grid.New(free)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	return g, nil
}

func loadTrajectories(path string) ([]obstacle.Trajectory, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obstacles file: %w", err)
	}
	defer f.Close()

	var trajectories []obstacle.Trajectory
	if err := json.NewDecoder(f).Decode(&trajectories); err != nil {
		return nil, fmt.Errorf("decoding obstacles file: %w", err)
	}

	return trajectories, nil
}

func resolveEndpoints(scenPath, startFlag, goalFlag string) (start, goal obstacle.Cell, err error) {
	if scenPath != "" {
		f, openErr := os.Open(scenPath)
		if openErr != nil {
			return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("opening scenario file: %w", openErr)
		}
		defer f.Close()

		return mapio.ReadScenario(f)
	}

	if startFlag == "" || goalFlag == "" {
		return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("either -scen or both -start and -goal must be given")
	}

	start, err = parseCell(startFlag)
	if err != nil {
		return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("-start: %w", err)
	}
	goal, err = parseCell(goalFlag)
	if err != nil {
		return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("-goal: %w", err)
	}

	return start, goal, nil
}

func parseCell(s string) (obstacle.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return obstacle.Cell{}, fmt.Errorf("expected \"i,j\", got %q", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return obstacle.Cell{}, fmt.Errorf("invalid row: %w", err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return obstacle.Cell{}, fmt.Errorf("invalid column: %w", err)
	}

	return obstacle.Cell{I: i, J: j}, nil
}

func run(algo string, g *grid.Grid, trajectories []obstacle.Trajectory, start, goal obstacle.Cell, weight, step float64) ([]pathrecon.Step, error) {
	switch algo {
	case "astar":
		ca := catable.New(trajectories)
		res, err := astar.Search(g, ca, start, goal, heuristic.Manhattan)
		if err != nil {
			return nil, err
		}
		log.Printf("sippcli: astar found=%v steps=%d nodesCreated=%d", res.Found, res.Steps, res.NodesCreated)
		return res.Path()

	case "sipp":
		m, err := safemap.Build(g, trajectories)
		if err != nil {
			return nil, fmt.Errorf("building safe map: %w", err)
		}
		res, err := sipp.Search(m, start, goal, heuristic.Manhattan)
		if err != nil {
			return nil, err
		}
		log.Printf("sippcli: sipp found=%v steps=%d nodesCreated=%d", res.Found, res.Steps, res.NodesCreated)
		return res.Path()

	case "wsipp":
		m, err := safemap.Build(g, trajectories)
		if err != nil {
			return nil, fmt.Errorf("building safe map: %w", err)
		}
		res, err := wsipp.Search(m, start, goal, weight, heuristic.Manhattan)
		if err != nil {
			return nil, err
		}
		log.Printf("sippcli: wsipp weight=%v found=%v steps=%d nodesCreated=%d reopened=%d", weight, res.Found, res.Steps, res.NodesCreated, len(res.Reopened))
		return res.Path()

	case "wsippd":
		m, err := safemap.Build(g, trajectories)
		if err != nil {
			return nil, fmt.Errorf("building safe map: %w", err)
		}
		res, err := wsippd.Search(m, start, goal, weight, heuristic.Manhattan)
		if err != nil {
			return nil, err
		}
		log.Printf("sippcli: wsippd weight=%v found=%v steps=%d nodesCreated=%d", weight, res.Found, res.Steps, res.NodesCreated)
		return res.Path()

	case "arsipp":
		m, err := safemap.Build(g, trajectories)
		if err != nil {
			return nil, fmt.Errorf("building safe map: %w", err)
		}
		it, err := arsipp.New(m, start, goal, weight, step, heuristic.Manhattan)
		if err != nil {
			return nil, err
		}

		var last arsipp.IterationResult
		for {
			res, more := it.Next()
			last = res
			log.Printf("sippcli: arsipp weight=%v found=%v cumulativeSteps=%d", res.Weight, res.Found, res.Steps)
			if !more {
				break
			}
		}
		return last.Path()

	default:
		return nil, fmt.Errorf("unknown -algo %q (want sipp, wsipp, wsippd, arsipp, or astar)", algo)
	}
}
