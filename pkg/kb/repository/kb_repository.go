package repository

import "lavoura/entities"

type KBRepository interface {
	CreateArticle(a *entities.Article) error
	BulkInsertChunks(cs []entities.ArticleChunk) error
	ListArticles() ([]entities.Article, error)
	AllChunks() ([]entities.ArticleChunk, error)
	ArticlesByIDs(ids []uint) (map[uint]entities.Article, error)
}
