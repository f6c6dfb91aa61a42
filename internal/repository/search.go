package repository

import (
	"strings"

	"catalog-go/internal/domain/search"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func column(field string) string {
	if field == search.FieldCreatedAt {
		return "created_at"
	}
	return field
}

// paginate 对 query 应用文本过滤、排序与分页，返回过滤后的总数
func paginate(query *gorm.DB, in search.Input, schema search.Schema) (*gorm.DB, int64, error) {
	in = in.Normalize()
	if q, ok := in.Text(); ok {
		query = query.Where(column(schema.TextField)+" ILIKE ?", "%"+likeEscaper.Replace(q)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, key := range schema.Resolve(in.OrderBy, in.Order) {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column(key.Field)}, Desc: key.Desc})
	}
	return query.Offset(in.Skip()).Limit(in.PerPage), total, nil
}
