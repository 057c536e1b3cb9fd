package stubserver

type routeHandlers struct {
	auth       authHandler
	developers developerHandler
	skillAreas skillAreaHandler
	projects   projectHandler
	categories categoryHandler
	agent      agentHandler
}

func initializeHandlers(store *store, issuer tokenIssuer, pageSize int) *routeHandlers {
	return &routeHandlers{
		auth:       newAuthHandler(store, issuer),
		developers: newDeveloperHandler(store, pageSize),
		skillAreas: newSkillAreaHandler(store, pageSize),
		projects:   newProjectHandler(store, pageSize),
		categories: newCategoryHandler(store, pageSize),
		agent:      newAgentHandler(store),
	}
}
