package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	AdminRepoName           RepositoryName = "admin"
	DepositRepoName         RepositoryName = "deposit"
	OrderRepoName           RepositoryName = "order"
	BalanceMutationRepoName RepositoryName = "balance_mutation"
	InventoryRepoName       RepositoryName = "inventory"
)
