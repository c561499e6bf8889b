package searcher

// Hyperparameters for MCTS

const DefaultExploration = 0.5 // Weight of the exploration bonus
const DefaultIterations = 100  // Playouts per decision

const Win = 1.0 // Score of a decisive win, the best possible outcome
