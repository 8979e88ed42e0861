//go:generate mockgen -source=../logger.go        -destination=./mock_logger.go        -package=mocks
//go:generate mockgen -source=../flight_parser.go -destination=./mock_flight_parser.go -package=mocks

package mocks
