package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var auditLimit int

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "Number of entries to show")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the most recent access decisions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, dbConnString)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		rows, err := pool.Query(ctx, `
			SELECT timestamp, action_type, COALESCE(permission, ''), subject_id,
				entity_type, entity_id, result
			FROM authz_audit_logs
			ORDER BY timestamp DESC
			LIMIT $1
		`, auditLimit)
		if err != nil {
			log.Fatalf("Failed to query audit logs: %v", err)
		}
		defer rows.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tACTION\tPERMISSION\tSUBJECT\tOBJECT\tRESULT")
		for rows.Next() {
			var (
				ts                                         time.Time
				action, permission, subject, etype, entity string
				result                                     *bool
			)
			if err := rows.Scan(&ts, &action, &permission, &subject, &etype, &entity, &result); err != nil {
				log.Fatalf("Failed to read audit log: %v", err)
			}

			outcome := "-"
			if result != nil {
				outcome = "deny"
				if *result {
					outcome = "allow"
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s:%s\t%s\n",
				ts.Format(time.RFC3339), action, permission, subject, etype, entity, outcome)
		}
		if err := rows.Err(); err != nil {
			log.Fatalf("Failed to read audit logs: %v", err)
		}
		w.Flush()
	},
}
