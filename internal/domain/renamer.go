package domain

import (
	"log/slog"
	"sort"

	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

// RenameTable is the name mapping chosen for one scope.
type RenameTable struct {
	Scope   int
	Kind    ScopeKind
	Name    string
	Renames map[string]string
}

// Renamer rewrites user-defined identifiers to generated names, keeping
// every binding consistent with the scope that owns it.
type Renamer interface {
	Rename(res *Resolution, gen *NameGenerator) ([]RenameTable, int)
}

// IdentifierRenamer is the default Renamer.
type IdentifierRenamer struct {
	reserved ReservedSet
}

// NewIdentifierRenamer creates a renamer that leaves reserved names alone.
func NewIdentifierRenamer(reserved ReservedSet) *IdentifierRenamer {
	if reserved == nil {
		reserved = DefaultReservedSet()
	}

	return &IdentifierRenamer{reserved: reserved}
}

// Rename assigns generated names scope by scope, then rewrites every
// definition and reference token. It returns the per-scope tables and the
// number of rewritten tokens.
func (r *IdentifierRenamer) Rename(res *Resolution, gen *NameGenerator) ([]RenameTable, int) {
	var tables []RenameTable

	for i := range res.Scopes {
		sc := &res.Scopes[i]

		names := make([]string, 0, len(sc.Defined))
		for name := range sc.Defined {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			if r.reserved.Reserved(name) || sc.Pinned[name] {
				sc.Renames[name] = name
				continue
			}

			sc.Renames[name] = gen.Next()
		}

		if len(names) > 0 {
			tables = append(tables, RenameTable{Scope: i, Kind: sc.Kind, Name: sc.Name, Renames: sc.Renames})
		}
	}

	count := 0

	rewrite := func(tok *pysyntax.Token, owner int) {
		if owner < 0 {
			return
		}

		to, ok := res.Scopes[owner].Renames[tok.Raw]
		if !ok || to == tok.Raw {
			return
		}

		tok.Text = to
		count++
	}

	for _, occ := range res.defs {
		rewrite(occ.tok, occ.scope)
	}

	for _, occ := range res.refs {
		rewrite(occ.tok, res.Lookup(occ.scope, occ.tok.Raw))
	}

	slog.Debug("Renamed identifiers", "scopes", len(tables), "tokens", count)

	return tables, count
}
