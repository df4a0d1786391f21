package adaptor

// Schema is the GraphQL surface of the service. Role requirements are
// enforced in the usecase layer, not the schema.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Food {
		id: ID!
		name: String!
		price: Float!
		category: String!
		diet: [String!]!
		ingredients: [String!]!
		ratings: [Int!]!
	}

	type User {
		id: ID!
		username: String!
		role: Int!
	}

	type Token {
		value: String!
	}

	type Order {
		id: ID!
		orderer: String!
		phoneNr: String!
		items: [Food!]!
	}

	type Query {
		foodCount: Int!
		allFoods: [Food!]!
		allCategories: [String!]!
		foodsByCategory(category: String!): [Food!]!
		allOrders: [Order!]!
		me: User
	}

	type Mutation {
		addFood(
			name: String!
			price: Float!
			category: String!
			diet: [String!]
			ingredients: [String!]
		): Food!

		editFood(
			name: String!
			price: Float!
			category: String!
			diet: [String!]
			ingredients: [String!]
		): Food

		removeFood(name: String!): Food

		rateFood(name: String!, rating: Int!): Food!

		createOrder(
			orderer: String!
			phoneNr: String!
			items: [String!]!
		): Order!

		removeOrder(id: ID!): Order

		createUser(
			username: String!
			password: String!
			role: Int!
		): User!

		login(username: String!, password: String!): Token!
	}
`
