package main

import (
	"fmt"
	"os"

	"github.com/gpkgtools/road2gpkg"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "road2gpkg",
	Short: "Generate lane-level road network fixtures as GeoPackage-style SQLite files",
}

var (
	templateName string
	outputPath   string
	geojsonPath  string
	sampleCount  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a road network fixture from a named topology template",
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := templateByName(templateName)
		if err != nil {
			return err
		}
		fname := outputPath
		if fname == "" {
			fname = template.Name + ".gpkg"
		}
		if sampleCount > 0 {
			for i := range template.Lanes {
				template.Lanes[i].Samples = sampleCount
			}
		}

		net, err := road2gpkg.Assemble(template)
		if err != nil {
			return err
		}

		// Remove existing file so every run starts from a clean artifact
		if _, err := os.Stat(fname); err == nil {
			if err := os.Remove(fname); err != nil {
				return err
			}
		}

		fmt.Printf("Creating GeoPackage: %s\n", fname)
		if err := road2gpkg.WriteGeoPackage(net, fname); err != nil {
			return err
		}
		fmt.Printf("Successfully created '%s' fixture\n", template.Name)
		printSummary(net)

		if geojsonPath != "" {
			fc := road2gpkg.NetworkToGeoJSON(net)
			b, err := fc.MarshalJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(geojsonPath, b, 0644); err != nil {
				return err
			}
			fmt.Printf("GeoJSON preview written to: %s\n", geojsonPath)
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the summary of a previously generated fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := road2gpkg.ReadGeoPackage(args[0])
		if err != nil {
			return err
		}
		printSummary(net)
		return nil
	},
}

func templateByName(name string) (*road2gpkg.RoadTemplate, error) {
	switch name {
	case "two_lane":
		return road2gpkg.TwoLaneRoadTemplate(), nil
	case "tshape":
		return road2gpkg.TShapeRoadTemplate(), nil
	}
	return nil, fmt.Errorf("unknown template '%s' (expected: two_lane / tshape)", name)
}

func printSummary(net *road2gpkg.Network) {
	fmt.Printf("  - Junctions: %d\n", len(net.Junctions))
	fmt.Printf("  - Segments: %d\n", len(net.Segments))
	fmt.Printf("  - Lanes: %d\n", len(net.Lanes))
	fmt.Printf("  - Branch Points: %d\n", len(net.BranchPoints))
	fmt.Printf("  - Branch Point Lane Connections: %d\n", len(net.BranchPointLanes))
	fmt.Printf("  - Adjacent Lane Relationships: %d\n", len(net.AdjacentLanes))
	fmt.Println("\n  Lane Centerlines:")
	for _, lane := range net.Lanes {
		center := lane.Geometry.Centerline
		start := road2gpkg.PrepareWKTPointZ(center[0])
		end := road2gpkg.PrepareWKTPointZ(center[len(center)-1])
		fmt.Printf("    %s: %s -> %s\n", lane.ID, start, end)
	}
}

func main() {
	generateCmd.Flags().StringVar(&templateName, "template", "tshape", "Topology template to generate. Expected values: two_lane / tshape")
	generateCmd.Flags().StringVar(&outputPath, "out", "", "Output file path (defaults to <template>.gpkg)")
	generateCmd.Flags().StringVar(&geojsonPath, "geojson", "", "Optional path for a GeoJSON preview of the generated network")
	generateCmd.Flags().IntVar(&sampleCount, "samples", 0, "Override the per-lane sample count of the template (0 keeps template defaults)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
