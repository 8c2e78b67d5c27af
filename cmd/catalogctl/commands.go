package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chefDTO "github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/listener"
	productDTO "github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/schema"
	"github.com/Nomet5/cake-app-sub003/internal/seed"
	"github.com/Nomet5/cake-app-sub003/pkg/broker"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer catalog.Close()

			if err := schema.Apply(cmd.Context(), catalog.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Apply the schema and load demo catalog data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer catalog.Close()

			if err := schema.Apply(cmd.Context(), catalog.DB); err != nil {
				return err
			}
			if err := seed.New(catalog.DB).Demo(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "demo data loaded")
			return nil
		},
	}
}

func (c *cli) productsCmd() *cobra.Command {
	var params productDTO.ListParams

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List available products",
		Long: `Lists available products, newest first.

Example:
  catalogctl products --search торт --categories "Торты,Пироги" --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer catalog.Close()

			products, page, err := catalog.Products.ListProducts(cmd.Context(), params)
			return printEnvelope(cmd, products, page.Meta(), err)
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "case-insensitive text in name or description")
	cmd.Flags().StringVar(&params.Category, "category", "", "exact category name")
	cmd.Flags().StringVar(&params.Categories, "categories", "", "comma separated category names, overrides --category")
	cmd.Flags().StringVar(&params.Limit, "limit", "", "page size")
	cmd.Flags().StringVar(&params.Page, "page", "", "page number")
	return cmd
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List active categories with product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer catalog.Close()

			categories, err := catalog.Categories.ListCategories(cmd.Context())
			return printEnvelope(cmd, categories, envelope.Meta{Total: len(categories)}, err)
		},
	}
}

func (c *cli) chefsCmd() *cobra.Command {
	var params chefDTO.ChefParams

	cmd := &cobra.Command{
		Use:   "chefs",
		Short: "List verified chefs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer catalog.Close()

			chefs, page, err := catalog.Chefs.ListChefs(cmd.Context(), params)
			return printEnvelope(cmd, chefs, page.Meta(), err)
		},
	}

	cmd.Flags().StringVar(&params.Limit, "limit", "", "page size")
	cmd.Flags().StringVar(&params.Page, "page", "", "page number")
	return cmd
}

func (c *cli) invalidateCmd() *cobra.Command {
	var eventType string

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Publish a catalog change event so servers drop cached records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			known := false
			for _, et := range listener.EventTypes() {
				known = known || et == eventType
			}
			if !known {
				return fmt.Errorf("unknown event %q, want one of %v", eventType, listener.EventTypes())
			}

			event, err := listener.NewEvent(eventType, nil)
			if err != nil {
				return err
			}

			producer := broker.NewProducer(c.cfg.Broker())
			defer producer.Close()

			if err := producer.PublishJSON(cmd.Context(), event.EventType, event); err != nil {
				return fmt.Errorf("publish %s: %w", eventType, err)
			}
			c.logger.Info("published catalog event", zap.String("event_id", event.EventID), zap.String("event_type", eventType))
			fmt.Fprintf(cmd.OutOrStdout(), "published %s %s\n", eventType, event.EventID)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "event", listener.ProductChanged, "event type to publish")
	return cmd
}
