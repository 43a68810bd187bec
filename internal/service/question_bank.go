package service

import "dsa_roadmap_backend/internal/model"

// Question banks ported from the original curriculum. One bank per level, ten
// questions each, option order fixed. The banks are intentionally static: the
// assessment is deterministic, with no shuffling of questions or options.

func newbieQuestions() []model.Question {
	return []model.Question{
		{
			Question: "What does DSA stand for?",
			Options: []string{
				"Data Storage and Access",
				"Data Structures and Algorithms",
				"Digital System Architecture",
				"Development System Analysis",
			},
			CorrectAnswer: 1,
			Explanation:   "DSA stands for Data Structures and Algorithms, which are fundamental concepts in computer science for organizing and processing data efficiently.",
		},
		{
			Question: "Which of the following is NOT a basic data structure?",
			Options: []string{
				"Array",
				"String",
				"Database",
				"Stack",
			},
			CorrectAnswer: 2,
			Explanation:   "A database is not a basic data structure but rather a system for storing and organizing data. Arrays, strings, and stacks are all basic data structures.",
		},
		{
			Question: "What is the primary purpose of an algorithm?",
			Options: []string{
				"To create user interfaces",
				"To solve problems step by step",
				"To store data efficiently",
				"To connect to databases",
			},
			CorrectAnswer: 1,
			Explanation:   "An algorithm is a step-by-step procedure designed to solve a specific problem or perform a specific task.",
		},
		{
			Question: "Which of these represents the correct way to access the first element of an array in most programming languages?",
			Options: []string{
				"array(1)",
				"array[0]",
				"array.first()",
				"array.get(1)",
			},
			CorrectAnswer: 1,
			Explanation:   "In most programming languages (including Java, Python, JavaScript, C++, and C#), arrays are zero-indexed, meaning the first element is accessed with index 0.",
		},
		{
			Question: "What is the time complexity of accessing an element in an array by its index?",
			Options: []string{
				"O(n)",
				"O(log n)",
				"O(1)",
				"O(n²)",
			},
			CorrectAnswer: 2,
			Explanation:   "Accessing an element in an array by its index is a constant time operation O(1) because the memory address can be calculated directly from the index.",
		},
		{
			Question: "Which of the following is an example of a linear data structure?",
			Options: []string{
				"Tree",
				"Graph",
				"Array",
				"Binary Search Tree",
			},
			CorrectAnswer: 2,
			Explanation:   "An array is a linear data structure where elements are stored in contiguous memory locations. Trees, graphs, and binary search trees are non-linear data structures.",
		},
		{
			Question: "What does the term 'iteration' mean in programming?",
			Options: []string{
				"Creating a new function",
				"Repeating a set of instructions",
				"Fixing bugs in code",
				"Converting code to machine language",
			},
			CorrectAnswer: 1,
			Explanation:   "Iteration refers to the process of repeating a set of instructions multiple times, typically using loops like for, while, or do-while.",
		},
		{
			Question: "Which of these is NOT a common way to represent an algorithm?",
			Options: []string{
				"Flowchart",
				"Pseudocode",
				"Database schema",
				"Programming language code",
			},
			CorrectAnswer: 2,
			Explanation:   "A database schema is used to define the structure of a database, not to represent algorithms. Flowcharts, pseudocode, and actual code are common ways to represent algorithms.",
		},
		{
			Question: "What is a variable in programming?",
			Options: []string{
				"A fixed value that never changes",
				"A named storage location for data",
				"A type of algorithm",
				"A section of code that repeats",
			},
			CorrectAnswer: 1,
			Explanation:   "A variable is a named storage location that can hold data values which may change during program execution.",
		},
		{
			Question: "Which of the following best describes a 'bug' in programming?",
			Options: []string{
				"A feature that users don't like",
				"An error or flaw that causes incorrect behavior",
				"A piece of code that runs slowly",
				"A security vulnerability",
			},
			CorrectAnswer: 1,
			Explanation:   "A bug is an error, flaw, or fault in a program that causes it to produce incorrect or unexpected results or behave in unintended ways.",
		},
	}
}

func beginnerQuestions() []model.Question {
	return []model.Question{
		{
			Question: "What is the time complexity of searching for an element in an unsorted array?",
			Options: []string{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n²)",
			},
			CorrectAnswer: 2,
			Explanation:   "In an unsorted array, you need to check each element until you find the target, which takes O(n) time in the worst case.",
		},
		{
			Question: "Which data structure operates on a LIFO (Last In, First Out) principle?",
			Options: []string{
				"Queue",
				"Stack",
				"Linked List",
				"Tree",
			},
			CorrectAnswer: 1,
			Explanation:   "A stack follows LIFO principle where the last element added is the first one to be removed.",
		},
		{
			Question: "What is the space complexity of an algorithm that creates an array of size n?",
			Options: []string{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n²)",
			},
			CorrectAnswer: 2,
			Explanation:   "Creating an array of size n requires O(n) space.",
		},
		{
			Question: "Which sorting algorithm has the best average-case time complexity?",
			Options: []string{
				"Bubble Sort",
				"Insertion Sort",
				"Quick Sort",
				"Selection Sort",
			},
			CorrectAnswer: 2,
			Explanation:   "Quick Sort has an average time complexity of O(n log n), which is better than O(n²) for the other options listed.",
		},
		{
			Question: "What data structure would you use to check if a string is a palindrome?",
			Options: []string{
				"Queue",
				"Stack",
				"Binary Tree",
				"Hash Table",
			},
			CorrectAnswer: 1,
			Explanation:   "A stack can be used to reverse the first half of the string and then compare with the second half.",
		},
		{
			Question: "Which of the following is NOT a characteristic of a linked list?",
			Options: []string{
				"Dynamic size",
				"Random access",
				"Efficient insertion/deletion",
				"Sequential access",
			},
			CorrectAnswer: 1,
			Explanation:   "Linked lists do not support random access (accessing elements by index in constant time) unlike arrays.",
		},
		{
			Question: "What is recursion in programming?",
			Options: []string{
				"A loop that runs infinitely",
				"A function that calls itself",
				"A method to optimize code",
				"A way to store data",
			},
			CorrectAnswer: 1,
			Explanation:   "Recursion is when a function calls itself to solve a smaller instance of the same problem.",
		},
		{
			Question: "In java, what would be the output of iterating through an array of size 5 with indices starting from 0 to 5?",
			Options: []string{
				"All elements will be processed",
				"The first 5 elements will be processed",
				"An error will occur due to index out of bounds",
				"The last element will be skipped",
			},
			CorrectAnswer: 2,
			Explanation:   "An array of size 5 has indices from 0 to 4. Trying to access index 5 would result in an index out of bounds error.",
		},
		{
			Question: "What is the primary advantage of using a binary search over a linear search?",
			Options: []string{
				"Binary search works on unsorted arrays",
				"Binary search is easier to implement",
				"Binary search is more efficient for large datasets",
				"Binary search uses less memory",
			},
			CorrectAnswer: 2,
			Explanation:   "Binary search has a time complexity of O(log n) compared to O(n) for linear search, making it much more efficient for large datasets.",
		},
		{
			Question: "Which of these is NOT a common operation performed on a queue?",
			Options: []string{
				"Enqueue",
				"Dequeue",
				"Peek",
				"Push",
			},
			CorrectAnswer: 3,
			Explanation:   "Push is an operation associated with stacks, not queues. The common queue operations are enqueue (add), dequeue (remove), and peek (view the front element).",
		},
	}
}

func intermediateQuestions() []model.Question {
	return []model.Question{
		{
			Question: "What is the time complexity of the best binary search tree operations?",
			Options: []string{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n log n)",
			},
			CorrectAnswer: 1,
			Explanation:   "In a balanced binary search tree, operations like search, insert, and delete take O(log n) time.",
		},
		{
			Question: "Which algorithm is used to find the shortest path in a weighted graph?",
			Options: []string{
				"Depth-First Search",
				"Breadth-First Search",
				"Dijkstra's Algorithm",
				"Quick Sort",
			},
			CorrectAnswer: 2,
			Explanation:   "Dijkstra's algorithm is specifically designed to find the shortest path in a weighted graph with non-negative weights.",
		},
		{
			Question: "What is the time complexity of the quicksort algorithm in the worst case?",
			Options: []string{
				"O(n)",
				"O(n log n)",
				"O(n²)",
				"O(2ⁿ)",
			},
			CorrectAnswer: 2,
			Explanation:   "Quicksort has a worst-case time complexity of O(n²) when the pivot selection consistently results in unbalanced partitions.",
		},
		{
			Question: "Which data structure is most efficient for implementing a priority queue?",
			Options: []string{
				"Array",
				"Linked List",
				"Binary Search Tree",
				"Heap",
			},
			CorrectAnswer: 3,
			Explanation:   "A heap provides O(log n) time for insertion and deletion of the highest-priority element, making it ideal for priority queues.",
		},
		{
			Question: "What is the space complexity of a recursive algorithm with maximum recursion depth n?",
			Options: []string{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n²)",
			},
			CorrectAnswer: 2,
			Explanation:   "The space complexity is O(n) due to the call stack storing information for each recursive call.",
		},
		{
			Question: "Which of the following is NOT a balanced binary search tree?",
			Options: []string{
				"AVL Tree",
				"Red-Black Tree",
				"B-Tree",
				"Binary Tree",
			},
			CorrectAnswer: 3,
			Explanation:   "A regular binary tree has no balancing mechanism, while AVL trees, Red-Black trees, and B-trees all maintain balance through specific rules.",
		},
		{
			Question: "What is the primary purpose of hashing in data structures?",
			Options: []string{
				"To encrypt data",
				"To compress data",
				"To provide fast data retrieval",
				"To sort data efficiently",
			},
			CorrectAnswer: 2,
			Explanation:   "Hashing is primarily used to provide fast data retrieval (average O(1) time) by mapping keys to array indices.",
		},
		{
			Question: "Which of these is NOT a common collision resolution technique in hash tables?",
			Options: []string{
				"Separate Chaining",
				"Linear Probing",
				"Quadratic Probing",
				"Binary Search",
			},
			CorrectAnswer: 3,
			Explanation:   "Binary search is not a collision resolution technique. Common techniques include separate chaining (using linked lists) and open addressing methods like linear and quadratic probing.",
		},
		{
			Question: "What is dynamic programming?",
			Options: []string{
				"Writing code that changes at runtime",
				"A method to solve problems by breaking them into simpler subproblems",
				"Programming that adapts to user input",
				"Using multiple programming languages in one project",
			},
			CorrectAnswer: 1,
			Explanation:   "Dynamic programming is a method for solving complex problems by breaking them down into simpler overlapping subproblems and storing their solutions to avoid redundant calculations.",
		},
		{
			Question: "Which traversal of a binary tree visits the root node first?",
			Options: []string{
				"In-order",
				"Pre-order",
				"Post-order",
				"Level-order",
			},
			CorrectAnswer: 1,
			Explanation:   "Pre-order traversal visits the root node first, then the left subtree, and finally the right subtree (Root-Left-Right).",
		},
	}
}

func advancedQuestions() []model.Question {
	return []model.Question{
		{
			Question: "What is the time complexity of the Bellman-Ford algorithm for finding shortest paths?",
			Options: []string{
				"O(V)",
				"O(E)",
				"O(V + E)",
				"O(V × E)",
			},
			CorrectAnswer: 3,
			Explanation:   "Bellman-Ford has a time complexity of O(V × E) where V is the number of vertices and E is the number of edges.",
		},
		{
			Question: "Which of the following is NOT an NP-complete problem?",
			Options: []string{
				"Traveling Salesman Problem",
				"Finding the shortest path in a weighted graph",
				"Graph Coloring",
				"Boolean Satisfiability Problem",
			},
			CorrectAnswer: 1,
			Explanation:   "Finding the shortest path in a weighted graph can be solved in polynomial time using algorithms like Dijkstra's or Bellman-Ford.",
		},
		{
			Question: "What is the amortized time complexity of insertion in a dynamic array?",
			Options: []string{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n²)",
			},
			CorrectAnswer: 0,
			Explanation:   "While some insertions require O(n) time for resizing, the amortized time complexity is O(1) when considering the cost averaged over a sequence of operations.",
		},
		{
			Question: "Which data structure is most efficient for implementing a union-find (disjoint set) operation?",
			Options: []string{
				"Binary Search Tree",
				"Hash Table",
				"Disjoint-Set Forest with Path Compression",
				"Red-Black Tree",
			},
			CorrectAnswer: 2,
			Explanation:   "Disjoint-Set Forest with Path Compression and Union by Rank provides near-constant time operations for union and find.",
		},
		{
			Question: "What is the time complexity of the Floyd-Warshall algorithm for all-pairs shortest paths?",
			Options: []string{
				"O(V²)",
				"O(V³)",
				"O(V × E)",
				"O(V × E × log V)",
			},
			CorrectAnswer: 1,
			Explanation:   "Floyd-Warshall has a time complexity of O(V³) where V is the number of vertices.",
		},
		{
			Question: "Which of the following is NOT a balanced tree data structure?",
			Options: []string{
				"AVL Tree",
				"Red-Black Tree",
				"Splay Tree",
				"B+ Tree",
			},
			CorrectAnswer: 2,
			Explanation:   "Splay trees are self-adjusting but not strictly balanced. They reorganize themselves to bring frequently accessed elements closer to the root.",
		},
		{
			Question: "What is the primary purpose of the A* search algorithm?",
			Options: []string{
				"Sorting data efficiently",
				"Finding the shortest path using heuristics",
				"Balancing binary trees",
				"Compressing data",
			},
			CorrectAnswer: 1,
			Explanation:   "A* is a pathfinding algorithm that uses heuristics to find the shortest path more efficiently than algorithms like Dijkstra's by prioritizing paths that appear to lead closer to the goal.",
		},
		{
			Question: "Which of these is NOT a common use of a trie data structure?",
			Options: []string{
				"Autocomplete suggestions",
				"Spell checking",
				"Sorting algorithms",
				"IP routing",
			},
			CorrectAnswer: 2,
			Explanation:   "Tries are not typically used for sorting algorithms. They are commonly used for efficient string operations like autocomplete, spell checking, and IP routing (CIDR).",
		},
		{
			Question: "What is the primary advantage of a B-tree over a binary search tree?",
			Options: []string{
				"B-trees use less memory",
				"B-trees are simpler to implement",
				"B-trees are better for disk access patterns",
				"B-trees have faster search times for all cases",
			},
			CorrectAnswer: 2,
			Explanation:   "B-trees are designed to work efficiently with disk-based storage by reducing the number of disk accesses, as they have a higher branching factor and are more balanced.",
		},
		{
			Question: "Which of the following algorithms can detect negative cycles in a graph?",
			Options: []string{
				"Dijkstra's Algorithm",
				"Prim's Algorithm",
				"Bellman-Ford Algorithm",
				"Kruskal's Algorithm",
			},
			CorrectAnswer: 2,
			Explanation:   "Bellman-Ford can detect negative cycles in a graph, while Dijkstra's cannot handle negative weights. Prim's and Kruskal's are for finding minimum spanning trees, not shortest paths.",
		},
	}
}

func expertQuestions() []model.Question {
	return []model.Question{
		{
			Question: "Which of the following problems is NOT in the P complexity class?",
			Options: []string{
				"Finding the shortest path in a graph with non-negative weights",
				"Determining if a number is prime",
				"The traveling salesman problem (TSP)",
				"Sorting an array of integers",
			},
			CorrectAnswer: 2,
			Explanation:   "The traveling salesman problem is NP-hard, not in P. The other problems can be solved in polynomial time.",
		},
		{
			Question: "What is the time complexity of the best known algorithm for matrix multiplication?",
			Options: []string{
				"O(n²)",
				"O(n²log n)",
				"O(n^2.373)",
				"O(n³)",
			},
			CorrectAnswer: 2,
			Explanation:   "The current best known algorithm for matrix multiplication has a time complexity of approximately O(n^2.373) using the Coppersmith–Winograd algorithm with optimizations.",
		},
		{
			Question: "Which of the following data structures would be most efficient for implementing a cache with LRU (Least Recently Used) eviction policy?",
			Options: []string{
				"Array",
				"Binary Search Tree",
				"Hash Table with Doubly Linked List",
				"Heap",
			},
			CorrectAnswer: 2,
			Explanation:   "An LRU cache is typically implemented using a hash table for O(1) lookups combined with a doubly linked list to maintain access order and perform efficient removals.",
		},
		{
			Question: "What is the primary purpose of a Bloom filter?",
			Options: []string{
				"To sort data efficiently",
				"To test if an element is definitely not in a set",
				"To compress data",
				"To encrypt data securely",
			},
			CorrectAnswer: 1,
			Explanation:   "A Bloom filter is a space-efficient probabilistic data structure used to test whether an element is definitely not in a set (no false negatives) or possibly in the set (may have false positives).",
		},
		{
			Question: "Which of the following is NOT a property of a Red-Black tree?",
			Options: []string{
				"Every node is either red or black",
				"The root is always black",
				"Every path from root to leaf has the same number of black nodes",
				"Red nodes must have two black children",
			},
			CorrectAnswer: 3,
			Explanation:   "In a Red-Black tree, red nodes must have black children (not necessarily two), but the actual property is that no red node can have a red parent (no consecutive red nodes).",
		},
		{
			Question: "What is the time complexity of finding the k-th smallest element in an unsorted array using the optimal algorithm?",
			Options: []string{
				"O(n log n)",
				"O(n)",
				"O(k log n)",
				"O(log n)",
			},
			CorrectAnswer: 1,
			Explanation:   "Using the QuickSelect algorithm (a variant of QuickSort), the average time complexity is O(n) to find the k-th smallest element in an unsorted array.",
		},
		{
			Question: "Which of the following algorithms is used for string pattern matching with the best average-case performance?",
			Options: []string{
				"Naive string matching",
				"Knuth-Morris-Pratt (KMP)",
				"Boyer-Moore",
				"Rabin-Karp",
			},
			CorrectAnswer: 2,
			Explanation:   "Boyer-Moore has the best average-case performance for string pattern matching, as it can skip multiple characters based on the bad character and good suffix heuristics.",
		},
		{
			Question: "What is the primary advantage of a Skip List over a balanced binary search tree?",
			Options: []string{
				"Lower space complexity",
				"Simpler implementation with similar average-case performance",
				"Better worst-case performance",
				"Guaranteed O(1) operations",
			},
			CorrectAnswer: 1,
			Explanation:   "Skip Lists offer a simpler implementation with probabilistic balancing while maintaining O(log n) average-case performance for search, insert, and delete operations, similar to balanced BSTs.",
		},
		{
			Question: "Which of the following is NOT a common use case for a segment tree?",
			Options: []string{
				"Range sum queries",
				"Range minimum queries",
				"Sorting algorithms",
				"Range update operations",
			},
			CorrectAnswer: 2,
			Explanation:   "Segment trees are not typically used for sorting algorithms. They excel at range queries (sum, min, max) and range updates with efficient O(log n) operations.",
		},
		{
			Question: "What is the space complexity of a suffix tree for a string of length n?",
			Options: []string{
				"O(n)",
				"O(n log n)",
				"O(n²)",
				"O(2ⁿ)",
			},
			CorrectAnswer: 0,
			Explanation:   "A suffix tree for a string of length n has O(n) space complexity, as it contains at most 2n-1 nodes.",
		},
	}
}
