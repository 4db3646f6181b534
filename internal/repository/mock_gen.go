// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./parse_record.go -destination=../mocks/mock_parse_record_repository.go -package=mocks ParseRecordRepositoryIface
