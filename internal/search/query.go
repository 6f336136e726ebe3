// Package search 把自由文本拆成检索词，并构造房源检索的过滤条件。
//
// 匹配规则：同一字段内所有词都要命中（AND），字段之间任一命中即可（OR）。
// 即记录满足 "location 含全部词" 或 "propertyType 含全部词" 或
// "description 含全部词"。词分散在不同字段的记录不算命中。
package search

import (
	"errors"
	"strings"

	"gorm.io/gorm/clause"
)

// ErrEmptyQuery 表示查询去掉空白后为空。
var ErrEmptyQuery = errors.New("empty search query")

// Fields 是参与检索的列，顺序即 SQL 子句和参数的顺序。
var Fields = []string{"location", "propertyType", "description"}

type Query struct {
	Terms []string
}

// Parse 按单个空格切分查询文本，不合并连续空格，也不去除标点。
func Parse(text string) (Query, error) {
	if strings.TrimSpace(text) == "" {
		return Query{}, ErrEmptyQuery
	}
	return Query{Terms: strings.Split(text, " ")}, nil
}

// Patterns 返回每个词的子串匹配模式 %term%。
func (q Query) Patterns() []string {
	out := make([]string, 0, len(q.Terms))
	for _, t := range q.Terms {
		out = append(out, "%"+t+"%")
	}
	return out
}

// Params 返回绑定参数：模式列表按 Fields 顺序重复三次。
func (q Query) Params() []interface{} {
	patterns := q.Patterns()
	out := make([]interface{}, 0, len(patterns)*len(Fields))
	for range Fields {
		for _, p := range patterns {
			out = append(out, p)
		}
	}
	return out
}

// Expression 构造 (f1 LIKE ? AND ...) OR (f2 LIKE ? AND ...) OR (...) 条件，
// 列名经由 gorm 按方言加引号。
func (q Query) Expression() clause.Expression {
	patterns := q.Patterns()
	perField := make([]clause.Expression, 0, len(Fields))
	for _, f := range Fields {
		likes := make([]clause.Expression, 0, len(patterns))
		for _, p := range patterns {
			likes = append(likes, clause.Like{Column: clause.Column{Name: f}, Value: p})
		}
		perField = append(perField, clause.And(likes...))
	}
	return clause.Or(perField...)
}
