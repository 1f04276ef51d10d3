package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains matches rows whose column contains term, ignoring case. LIKE wildcards in
// the term are matched literally.
func nameContains(column, term string) squirrel.Sqlizer {
	return squirrel.ILike{column: "%" + likeEscaper.Replace(term) + "%"}
}
