package mocks

//go:generate go run go.uber.org/mock/mockgen -destination=mock_video_repository.go -package=mocks catalog-go/internal/service VideoRepository
//go:generate go run go.uber.org/mock/mockgen -destination=mock_relation_repository.go -package=mocks catalog-go/internal/service RelationRepository
//go:generate go run go.uber.org/mock/mockgen -destination=mock_blob_storage.go -package=mocks catalog-go/internal/service BlobStorage
//go:generate go run go.uber.org/mock/mockgen -destination=mock_unit_of_work.go -package=mocks catalog-go/internal/service UnitOfWork
//go:generate go run go.uber.org/mock/mockgen -destination=mock_result_deduper.go -package=mocks catalog-go/internal/service ResultDeduper
//go:generate go run go.uber.org/mock/mockgen -destination=mock_search_index.go -package=mocks catalog-go/internal/service SearchIndex
