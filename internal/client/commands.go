package client

import (
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/query"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/spf13/cobra"
)

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tasksync",
		Short: "Query a Todoist account through the Sync API",
		Long: `tasksync performs a full Todoist sync and answers lookups over the
synced elements: element types, filtered records, projects and their tasks.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&a.copyResult, "copy", false, "Copy the printed result to the clipboard")

	root.AddCommand(a.keysCmd())
	root.AddCommand(a.fetchCmd())
	root.AddCommand(a.firstCmd())
	root.AddCommand(a.projectsCmd())
	root.AddCommand(a.itemsCmd())
	root.AddCommand(a.versionCmd())

	return root
}

// keysCmd creates the keys subcommand
func (a *App) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the element types of the synced response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := a.sync(cmd)
			if err != nil {
				return err
			}

			return a.print(cmd, renderKeys(newStyles(cmd.OutOrStdout()), tasks.Keys()))
		},
	}
}

// lookupFlags are shared by fetch and first.
type lookupFlags struct {
	field string
	where []string
	any   bool
}

func (f *lookupFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.field, "field", "", "Print only this field of every match")
	cmd.Flags().StringArrayVar(&f.where, "where", nil, "Filter as field=value[,value...]; repeatable")
	cmd.Flags().BoolVar(&f.any, "any", false, "Match records satisfying any filter instead of all")
}

func (f *lookupFlags) options() ([]query.Option, error) {
	filters, err := parseWhere(f.where)
	if err != nil {
		return nil, err
	}

	opts := []query.Option{query.WithFilters(filters)}
	if f.field != "" {
		opts = append(opts, query.Field(f.field))
	}
	if f.any {
		opts = append(opts, query.MatchAny())
	}

	return opts, nil
}

// fetchCmd creates the fetch subcommand
func (a *App) fetchCmd() *cobra.Command {
	var (
		flags lookupFlags
		index int
	)

	cmd := &cobra.Command{
		Use:   "fetch <element>",
		Short: "Print the records of an element type that match the filters",
		Long: `Print the records of an element type that match the filters as JSON.

With --index only the match at that position is printed (negative values
count from the end); a missing position prints null.`,
		Example: `  tasksync fetch items --where project_id=2203306141
  tasksync fetch items --field content --where priority=3,4
  tasksync fetch projects --where name=Inbox --where color=red --any`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if _, err = a.sync(cmd); err != nil {
				return err
			}

			if !cmd.Flags().Changed("index") {
				found, err := a.responses.Fetch(args[0], opts...)
				if err != nil {
					return err
				}
				return a.printJSON(cmd, found)
			}

			value, _, err := a.responses.FetchIndex(args[0], index, opts...)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, value)
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "Print only the match at this position")

	return cmd
}

// firstCmd creates the first subcommand
func (a *App) firstCmd() *cobra.Command {
	var flags lookupFlags

	cmd := &cobra.Command{
		Use:     "first <element>",
		Short:   "Print the first matching record, or null when nothing matches",
		Example: `  tasksync first projects --field id --where name=Inbox`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			if _, err = a.sync(cmd); err != nil {
				return err
			}

			value, _, err := a.responses.FetchFirst(args[0], opts...)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, value)
		},
	}

	flags.bind(cmd)

	return cmd
}

// projectsCmd creates the projects subcommand
func (a *App) projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects [partial-name]",
		Short: "List projects whose name contains the argument, ignoring case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.sync(cmd)
			if err != nil {
				return err
			}

			partial := ""
			if len(args) > 0 {
				partial = args[0]
			}

			return a.print(cmd, renderProjects(newStyles(cmd.OutOrStdout()), tasks.FindProjects(partial)))
		},
	}
}

// itemsCmd creates the items subcommand
func (a *App) itemsCmd() *cobra.Command {
	var content, expr string

	cmd := &cobra.Command{
		Use:   "items <project-name>",
		Short: "Print the tasks of a project as JSON",
		Long: `Print the tasks of a project as JSON.

--expr appends a JMESPath expression to the project's task list, so
"[*].content" prints only the contents and "[?priority==` + "`4`" + `]" keeps
urgent tasks.`,
		Example: `  tasksync items Inbox
  tasksync items Work --content report
  tasksync items Work --expr '[*].content'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expr != "" {
				if _, err := service.CompileExpression(expr); err != nil {
					return err
				}
			}

			tasks, err := a.sync(cmd)
			if err != nil {
				return err
			}

			if content == "" && expr != "" {
				found, err := tasks.SearchProjectItems(args[0], expr)
				if err != nil {
					return err
				}
				return a.printJSON(cmd, found)
			}

			var items []models.Record
			if content == "" {
				items, err = tasks.FindProjectItems(args[0])
			} else {
				items, err = tasks.FindItemsByContent(args[0], content)
			}
			if err != nil {
				return err
			}
			if expr == "" {
				return a.printJSON(cmd, items)
			}

			found, err := service.SearchRecords(items, expr)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, found)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Only tasks whose content contains this text, ignoring case")
	cmd.Flags().StringVar(&expr, "expr", "", "JMESPath expression applied to the task list, e.g. '[*].content'")

	return cmd
}

// versionCmd creates the version subcommand
func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, renderBuildInfo(newStyles(cmd.OutOrStdout()), a.buildInfo))
		},
	}
}
