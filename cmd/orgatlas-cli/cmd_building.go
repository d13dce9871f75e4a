package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgatlas/orgatlas/client"
)

func newBuildingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "building",
		Short: "Manage buildings",
	}
	cmd.AddCommand(buildingCreateCmd())
	cmd.AddCommand(buildingGetCmd())
	cmd.AddCommand(buildingUpdateCmd())
	cmd.AddCommand(buildingDeleteCmd())
	cmd.AddCommand(buildingListCmd())
	cmd.AddCommand(buildingFindRadiusCmd())
	cmd.AddCommand(buildingFindBBoxCmd())
	return cmd
}

func parseIDArg(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fatal("parse id", err)
	}
	return id
}

func buildingCreateCmd() *cobra.Command {
	var lon, lat float64
	cmd := &cobra.Command{
		Use:   "create <address>",
		Short: "Create a building",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			b, err := apiClient.Buildings.Create(context.Background(), &client.CreateBuildingRequest{
				Address:  args[0],
				Location: client.NewCoordinate(lon, lat),
			})
			if err != nil {
				fatal("create building", err)
			}
			output(b, strconv.FormatInt(b.ID, 10))
		},
	}
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.MarkFlagRequired("lon") //nolint:errcheck
	cmd.MarkFlagRequired("lat") //nolint:errcheck
	return cmd
}

func buildingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a building by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			b, err := apiClient.Buildings.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get building", err)
			}
			output(b, strconv.FormatInt(b.ID, 10))
		},
	}
}

func buildingUpdateCmd() *cobra.Command {
	var address string
	var lon, lat float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a building",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateBuildingRequest{}
			if address != "" {
				req.Address = &address
			}
			if cmd.Flags().Changed("lon") || cmd.Flags().Changed("lat") {
				loc := client.NewCoordinate(lon, lat)
				req.Location = &loc
			}
			b, err := apiClient.Buildings.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update building", err)
			}
			output(b, strconv.FormatInt(b.ID, 10))
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	return cmd
}

func buildingDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a building",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Buildings.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete building", err)
			}
			fmt.Println("deleted")
		},
	}
}

func buildingListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buildings",
		Run: func(cmd *cobra.Command, args []string) {
			buildings, err := apiClient.Buildings.List(context.Background(), &client.ListOptions{
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list buildings", err)
			}
			printBuildings(buildings)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}

func buildingFindRadiusCmd() *cobra.Command {
	var lon, lat, radius float64
	cmd := &cobra.Command{
		Use:   "find-radius",
		Short: "Find buildings within a radius of a point",
		Run: func(cmd *cobra.Command, args []string) {
			buildings, err := apiClient.Buildings.FindInRadius(context.Background(), &client.RadiusQuery{
				Center:       client.NewCoordinate(lon, lat),
				RadiusMeters: radius,
			})
			if err != nil {
				fatal("radius search", err)
			}
			printBuildings(buildings)
		},
	}
	cmd.Flags().Float64Var(&lon, "lon", 0, "Center longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Center latitude")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Radius in meters (default 100)")
	cmd.MarkFlagRequired("lon") //nolint:errcheck
	cmd.MarkFlagRequired("lat") //nolint:errcheck
	return cmd
}

func buildingFindBBoxCmd() *cobra.Command {
	var tlLon, tlLat, brLon, brLat float64
	cmd := &cobra.Command{
		Use:   "find-bbox",
		Short: "Find buildings inside a rectangular area",
		Run: func(cmd *cobra.Command, args []string) {
			buildings, err := apiClient.Buildings.FindInBBox(context.Background(), &client.BBoxQuery{
				TopLeft:     client.NewCoordinate(tlLon, tlLat),
				BottomRight: client.NewCoordinate(brLon, brLat),
			})
			if err != nil {
				fatal("bbox search", err)
			}
			printBuildings(buildings)
		},
	}
	cmd.Flags().Float64Var(&tlLon, "tl-lon", 0, "Top-left longitude")
	cmd.Flags().Float64Var(&tlLat, "tl-lat", 0, "Top-left latitude")
	cmd.Flags().Float64Var(&brLon, "br-lon", 0, "Bottom-right longitude")
	cmd.Flags().Float64Var(&brLat, "br-lat", 0, "Bottom-right latitude")
	cmd.MarkFlagRequired("tl-lon") //nolint:errcheck
	cmd.MarkFlagRequired("tl-lat") //nolint:errcheck
	cmd.MarkFlagRequired("br-lon") //nolint:errcheck
	cmd.MarkFlagRequired("br-lat") //nolint:errcheck
	return cmd
}

func printBuildings(buildings []client.Building) {
	if flagFmt == "table" {
		rows := make([][]string, 0, len(buildings))
		for _, b := range buildings {
			rows = append(rows, []string{
				strconv.FormatInt(b.ID, 10),
				b.Address,
				coordString(b.Location),
			})
		}
		formatTable([]string{"ID", "ADDRESS", "LOCATION"}, rows)
		return
	}
	output(buildings, "")
}

func coordString(c client.Coordinate) string {
	if c.Longitude == nil || c.Latitude == nil {
		return ""
	}
	return fmt.Sprintf("%.6f,%.6f", *c.Longitude, *c.Latitude)
}
