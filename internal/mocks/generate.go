package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ListSource --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename list_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DetailSource --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename detail_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name QuoteSource --dir ../domain/odds --output domain/odds --outpkg oddsmock --filename quote_source_mock.go
