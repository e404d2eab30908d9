package handlers

import (
	repo "github.com/rogerio-castellano/grocery-pos/internal/repo"
)

var (
	productRepo     repo.ProductRepository
	categoryRepo    repo.CategoryRepository
	customerRepo    repo.CustomerRepository
	saleRepo        repo.SaleRepository
	transactionRepo repo.TransactionRepository
	reportRepo      repo.ReportRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetTransactionRepo(r repo.TransactionRepository) {
	transactionRepo = r
}

func SetReportRepo(r repo.ReportRepository) {
	reportRepo = r
}
