package service

import "dsa_roadmap_backend/internal/model"

// Roadmap templates ported from the original curriculum. Newbie and beginner
// levels carry a full four-week plan; the remaining levels ship an abbreviated
// single-week plan, exactly as in the source data. Language only parameterizes
// resource URLs, never the structure.

func newbieTemplate(lang model.Language) []model.RoadmapWeek {
	return []model.RoadmapWeek{
		{
			Week:  1,
			Title: "Programming Basics",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Introduction to Programming",
					Description: "Learn the basics of programming and get familiar with your chosen language.",
					Resources: []model.RoadmapResource{
						{Title: lang.DisplayName() + " Basics", URL: languageBasicsURL(lang), Type: model.ResourceDocumentation},
						{Title: "Variables and Data Types", URL: languageResourceURL(lang, "basics"), Type: model.ResourceTutorial},
						{Title: "Introduction to Programming", URL: languageVideoURL(lang, "introduction"), Type: model.ResourceVideo},
						{Title: "Hello World Program", URL: languagePracticeURL(lang, "hello-world"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Control Flow",
					Description: "Learn about conditional statements and loops to control program flow.",
					Resources: []model.RoadmapResource{
						{Title: "Conditionals and Loops", URL: languageResourceURL(lang, "control-flow"), Type: model.ResourceTutorial},
						{Title: "Control Flow Documentation", URL: languageDocURL(lang, "control-flow"), Type: model.ResourceDocumentation},
						{Title: "If Statements and Loops", URL: languageVideoURL(lang, "control-flow"), Type: model.ResourceVideo},
						{Title: "Practice: Simple Problems", URL: languagePracticeURL(lang, "control-flow"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Functions and Methods",
					Description: "Learn how to create and use functions to organize your code.",
					Resources: []model.RoadmapResource{
						{Title: "Functions Tutorial", URL: languageResourceURL(lang, "functions"), Type: model.ResourceTutorial},
						{Title: "Functions Documentation", URL: languageDocURL(lang, "functions"), Type: model.ResourceDocumentation},
						{Title: "Functions and Methods", URL: languageVideoURL(lang, "functions"), Type: model.ResourceVideo},
						{Title: "Practice: Function Exercises", URL: languagePracticeURL(lang, "functions"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Arrays and Lists",
					Description: "Learn about arrays and lists, the most basic data structures.",
					Resources: []model.RoadmapResource{
						{Title: "Arrays and Lists Tutorial", URL: languageResourceURL(lang, "arrays"), Type: model.ResourceTutorial},
						{Title: "Arrays Documentation", URL: languageDocURL(lang, "arrays"), Type: model.ResourceDocumentation},
						{Title: "Working with Arrays", URL: languageVideoURL(lang, "arrays"), Type: model.ResourceVideo},
						{Title: "Practice: Array Problems", URL: languagePracticeURL(lang, "arrays"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Basic Problem Solving",
					Description: "Apply what you've learned to solve simple programming problems.",
					Resources: []model.RoadmapResource{
						{Title: "Problem Solving Techniques", URL: "https://www.geeksforgeeks.org/how-to-approach-a-coding-problem/", Type: model.ResourceTutorial},
						{Title: "Basic Algorithm Documentation", URL: languageDocURL(lang, "algorithms"), Type: model.ResourceDocumentation},
						{Title: "Problem Solving Strategies", URL: languageVideoURL(lang, "problem-solving"), Type: model.ResourceVideo},
						{Title: "Practice: Simple Problems", URL: "https://www.codewars.com/kata/search/" + string(lang) + "?q=&r[]=-8&beta=false", Type: model.ResourcePractice},
					},
				},
			},
		},
		{
			Week:  2,
			Title: "Basic Data Structures",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Arrays and Strings",
					Description: "Dive deeper into arrays and learn about string manipulation.",
					Resources: []model.RoadmapResource{
						{Title: "String Manipulation", URL: languageResourceURL(lang, "strings"), Type: model.ResourceTutorial},
						{Title: "String Documentation", URL: languageDocURL(lang, "string"), Type: model.ResourceDocumentation},
						{Title: "String Operations", URL: languageVideoURL(lang, "strings"), Type: model.ResourceVideo},
						{Title: "Practice: String Problems", URL: languagePracticeURL(lang, "strings"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Introduction to Time Complexity",
					Description: "Learn the basics of analyzing algorithm efficiency.",
					Resources: []model.RoadmapResource{
						{Title: "Time Complexity Basics", URL: "https://www.geeksforgeeks.org/understanding-time-complexity-simple-examples/", Type: model.ResourceTutorial},
						{Title: "Big O Notation", URL: "https://www.khanacademy.org/computing/computer-science/algorithms/asymptotic-notation/a/big-o-notation", Type: model.ResourceDocumentation},
						{Title: "Understanding Time Complexity", URL: "https://www.youtube.com/watch?v=D6xkbGLQesk", Type: model.ResourceVideo},
						{Title: "Time Complexity Quiz", URL: "https://www.geeksforgeeks.org/quiz-corner/#Time%20Complexity%20Quiz", Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Basic Searching",
					Description: "Learn about linear search and its applications.",
					Resources: []model.RoadmapResource{
						{Title: "Linear Search Tutorial", URL: "https://www.geeksforgeeks.org/linear-search/", Type: model.ResourceTutorial},
						{Title: "Searching Algorithms", URL: "https://www.geeksforgeeks.org/searching-algorithms/", Type: model.ResourceDocumentation},
						{Title: "Linear Search Explained", URL: "https://www.youtube.com/watch?v=4GPdGsB3OSc", Type: model.ResourceVideo},
						{Title: "Practice: Search Problems", URL: languagePracticeURL(lang, "search"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Basic Sorting",
					Description: "Learn about simple sorting algorithms like bubble sort.",
					Resources: []model.RoadmapResource{
						{Title: "Bubble Sort Tutorial", URL: "https://www.geeksforgeeks.org/bubble-sort/", Type: model.ResourceTutorial},
						{Title: "Sorting Algorithms", URL: "https://www.geeksforgeeks.org/sorting-algorithms/", Type: model.ResourceDocumentation},
						{Title: "Bubble Sort Visualization", URL: "https://www.youtube.com/watch?v=Cq7SMsQBEUw", Type: model.ResourceVideo},
						{Title: "Implement Bubble Sort", URL: languagePracticeURL(lang, "bubble-sort"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Mini Project",
					Description: "Apply what you've learned in a small project.",
					Resources: []model.RoadmapResource{
						{Title: "Simple Calculator Project", URL: "https://www.geeksforgeeks.org/simple-calculator-using-" + string(lang) + "/", Type: model.ResourceTutorial},
						{Title: "Project Ideas", URL: "https://github.com/karan/Projects-Solutions", Type: model.ResourceDocumentation},
						{Title: "Building Your First Project", URL: languageVideoURL(lang, "simple-project"), Type: model.ResourceVideo},
						{Title: "To-Do List Application", URL: "https://github.com/search?q=" + string(lang) + "+todo+app+beginner", Type: model.ResourceProject},
					},
				},
			},
		},
		{
			Week:  3,
			Title: "Basic Data Structures",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Introduction to Lists",
					Description: "Learn about lists and their operations.",
					Resources: []model.RoadmapResource{
						{Title: "Lists Tutorial", URL: languageResourceURL(lang, "lists"), Type: model.ResourceTutorial},
						{Title: "Lists Documentation", URL: languageDocURL(lang, "list"), Type: model.ResourceDocumentation},
						{Title: "Working with Lists", URL: languageVideoURL(lang, "lists"), Type: model.ResourceVideo},
						{Title: "Practice: List Problems", URL: languagePracticeURL(lang, "lists"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Introduction to Stacks",
					Description: "Learn about stacks and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Stack Data Structure", URL: "https://www.geeksforgeeks.org/stack-data-structure/", Type: model.ResourceTutorial},
						{Title: "Stack Implementation", URL: languageResourceURL(lang, "stack"), Type: model.ResourceDocumentation},
						{Title: "Stack Explained", URL: "https://www.youtube.com/watch?v=F1F2imiOJfk", Type: model.ResourceVideo},
						{Title: "Implement a Stack", URL: languagePracticeURL(lang, "stack"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Introduction to Queues",
					Description: "Learn about queues and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Queue Data Structure", URL: "https://www.geeksforgeeks.org/queue-data-structure/", Type: model.ResourceTutorial},
						{Title: "Queue Implementation", URL: languageResourceURL(lang, "queue"), Type: model.ResourceDocumentation},
						{Title: "Queue Explained", URL: "https://www.youtube.com/watch?v=XuCbpw6Bj1U", Type: model.ResourceVideo},
						{Title: "Implement a Queue", URL: languagePracticeURL(lang, "queue"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Simple Recursion",
					Description: "Learn about recursion and its basic applications.",
					Resources: []model.RoadmapResource{
						{Title: "Recursion Basics", URL: "https://www.geeksforgeeks.org/recursion/", Type: model.ResourceTutorial},
						{Title: "Recursion Examples", URL: languageResourceURL(lang, "recursion"), Type: model.ResourceDocumentation},
						{Title: "Recursion Explained", URL: "https://www.youtube.com/watch?v=KEEKn7Me-ms", Type: model.ResourceVideo},
						{Title: "Practice: Recursion Problems", URL: languagePracticeURL(lang, "recursion"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Review and Practice",
					Description: "Review what you've learned and practice with problems.",
					Resources: []model.RoadmapResource{
						{Title: "Data Structures Review", URL: "https://www.geeksforgeeks.org/data-structures/", Type: model.ResourceTutorial},
						{Title: "Basic DSA Cheat Sheet", URL: "https://www.geeksforgeeks.org/complete-roadmap-to-learn-dsa-from-scratch/", Type: model.ResourceDocumentation},
						{Title: "DSA for Beginners", URL: "https://www.youtube.com/watch?v=5_5oE5lgrhw", Type: model.ResourceVideo},
						{Title: "Practice: Mixed Problems", URL: "https://www.hackerrank.com/domains/data-structures", Type: model.ResourcePractice},
					},
				},
			},
		},
		{
			Week:  4,
			Title: "Introduction to Algorithms",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Algorithm Basics",
					Description: "Learn what algorithms are and how to analyze them.",
					Resources: []model.RoadmapResource{
						{Title: "Introduction to Algorithms", URL: "https://www.geeksforgeeks.org/introduction-to-algorithms/", Type: model.ResourceTutorial},
						{Title: "Algorithm Analysis", URL: "https://www.khanacademy.org/computing/computer-science/algorithms", Type: model.ResourceDocumentation},
						{Title: "Algorithm Basics", URL: "https://www.youtube.com/watch?v=0IAPZzGSbME", Type: model.ResourceVideo},
						{Title: "Algorithm Quiz", URL: "https://www.geeksforgeeks.org/algorithms-gq/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Binary Search",
					Description: "Learn about binary search and its applications.",
					Resources: []model.RoadmapResource{
						{Title: "Binary Search Tutorial", URL: "https://www.geeksforgeeks.org/binary-search/", Type: model.ResourceTutorial},
						{Title: "Binary Search Implementation", URL: languageResourceURL(lang, "binary-search"), Type: model.ResourceDocumentation},
						{Title: "Binary Search Explained", URL: "https://www.youtube.com/watch?v=P3YID7liBug", Type: model.ResourceVideo},
						{Title: "Practice: Binary Search Problems", URL: "https://leetcode.com/tag/binary-search/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Selection and Insertion Sort",
					Description: "Learn about selection and insertion sort algorithms.",
					Resources: []model.RoadmapResource{
						{Title: "Selection Sort Tutorial", URL: "https://www.geeksforgeeks.org/selection-sort/", Type: model.ResourceTutorial},
						{Title: "Insertion Sort Tutorial", URL: "https://www.geeksforgeeks.org/insertion-sort/", Type: model.ResourceDocumentation},
						{Title: "Selection and Insertion Sort Visualization", URL: "https://www.youtube.com/watch?v=g-PGLbMth_g", Type: model.ResourceVideo},
						{Title: "Implement Sorting Algorithms", URL: languagePracticeURL(lang, "sorting"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Basic Problem-Solving Techniques",
					Description: "Learn strategies for solving algorithmic problems.",
					Resources: []model.RoadmapResource{
						{Title: "Problem-Solving Strategies", URL: "https://www.geeksforgeeks.org/how-to-approach-a-coding-problem/", Type: model.ResourceTutorial},
						{Title: "Algorithm Design Techniques", URL: "https://www.geeksforgeeks.org/fundamentals-of-algorithms/", Type: model.ResourceDocumentation},
						{Title: "How to Solve Coding Problems", URL: "https://www.youtube.com/watch?v=GKgAVjJxh9w", Type: model.ResourceVideo},
						{Title: "Practice: Easy Problems", URL: "https://leetcode.com/problemset/all/?difficulty=Easy", Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Final Project",
					Description: "Apply everything you've learned in a project.",
					Resources: []model.RoadmapResource{
						{Title: "Simple Game Project", URL: "https://www.geeksforgeeks.org/projects-" + string(lang) + "/", Type: model.ResourceTutorial},
						{Title: "Project Ideas for Beginners", URL: "https://github.com/karan/Projects", Type: model.ResourceDocumentation},
						{Title: "Building a Simple Game", URL: languageVideoURL(lang, "simple-game"), Type: model.ResourceVideo},
						{Title: "Number Guessing Game", URL: "https://github.com/search?q=" + string(lang) + "+number+guessing+game", Type: model.ResourceProject},
					},
				},
			},
		},
	}
}

func beginnerTemplate(lang model.Language) []model.RoadmapWeek {
	return []model.RoadmapWeek{
		{
			Week:  1,
			Title: "Data Structures Fundamentals",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Arrays and Strings",
					Description: "Learn advanced array operations and string manipulation techniques.",
					Resources: []model.RoadmapResource{
						{Title: "Array Manipulation Techniques", URL: languageResourceURL(lang, "arrays-advanced"), Type: model.ResourceTutorial},
						{Title: "String Algorithms", URL: languageResourceURL(lang, "string-algorithms"), Type: model.ResourceDocumentation},
						{Title: "Advanced Array Operations", URL: languageVideoURL(lang, "arrays-advanced"), Type: model.ResourceVideo},
						{Title: "Practice: Array Problems", URL: "https://leetcode.com/tag/array/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Linked Lists",
					Description: "Learn about linked lists and their implementations.",
					Resources: []model.RoadmapResource{
						{Title: "Introduction to Linked Lists", URL: "https://www.geeksforgeeks.org/linked-list-set-1-introduction/", Type: model.ResourceTutorial},
						{Title: "Linked List Implementation", URL: languageResourceURL(lang, "linked-list"), Type: model.ResourceDocumentation},
						{Title: "Linked Lists Explained", URL: "https://www.youtube.com/watch?v=_jQhALI4ujg", Type: model.ResourceVideo},
						{Title: "Practice: Linked List Problems", URL: "https://leetcode.com/tag/linked-list/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Stacks and Queues",
					Description: "Learn about stacks, queues, and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Stack Data Structure", URL: "https://www.geeksforgeeks.org/stack-data-structure/", Type: model.ResourceTutorial},
						{Title: "Queue Data Structure", URL: "https://www.geeksforgeeks.org/queue-data-structure/", Type: model.ResourceDocumentation},
						{Title: "Stacks and Queues Explained", URL: "https://www.youtube.com/watch?v=wjI1WNcIntg", Type: model.ResourceVideo},
						{Title: "Practice: Stack and Queue Problems", URL: "https://leetcode.com/tag/stack/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Recursion Fundamentals",
					Description: "Learn about recursion and how to solve problems recursively.",
					Resources: []model.RoadmapResource{
						{Title: "Recursion Tutorial", URL: "https://www.geeksforgeeks.org/recursion/", Type: model.ResourceTutorial},
						{Title: "Recursion Examples", URL: languageResourceURL(lang, "recursion"), Type: model.ResourceDocumentation},
						{Title: "Recursion Explained", URL: "https://www.youtube.com/watch?v=IJDJ0kBx2LM", Type: model.ResourceVideo},
						{Title: "Practice: Recursion Problems", URL: "https://leetcode.com/tag/recursion/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Time and Space Complexity",
					Description: "Learn how to analyze algorithm efficiency.",
					Resources: []model.RoadmapResource{
						{Title: "Big O Notation", URL: "https://www.geeksforgeeks.org/analysis-of-algorithms-set-1-asymptotic-analysis/", Type: model.ResourceTutorial},
						{Title: "Time Complexity Analysis", URL: "https://www.geeksforgeeks.org/time-complexity-and-space-complexity/", Type: model.ResourceDocumentation},
						{Title: "Understanding Big O", URL: "https://www.youtube.com/watch?v=v4cd1O4zkGw", Type: model.ResourceVideo},
						{Title: "Complexity Analysis Quiz", URL: "https://www.geeksforgeeks.org/quiz-corner/#Time%20Complexity%20Quiz", Type: model.ResourcePractice},
					},
				},
			},
		},
		{
			Week:  2,
			Title: "Basic Algorithms",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Searching Algorithms",
					Description: "Learn about linear and binary search algorithms.",
					Resources: []model.RoadmapResource{
						{Title: "Linear and Binary Search", URL: "https://www.geeksforgeeks.org/searching-algorithms/", Type: model.ResourceTutorial},
						{Title: "Binary Search Implementation", URL: languageResourceURL(lang, "binary-search"), Type: model.ResourceDocumentation},
						{Title: "Binary Search Explained", URL: "https://www.youtube.com/watch?v=P3YID7liBug", Type: model.ResourceVideo},
						{Title: "Practice: Searching Problems", URL: "https://leetcode.com/tag/binary-search/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Basic Sorting",
					Description: "Learn about bubble, selection, and insertion sort algorithms.",
					Resources: []model.RoadmapResource{
						{Title: "Bubble, Selection, and Insertion Sort", URL: "https://www.geeksforgeeks.org/sorting-algorithms/", Type: model.ResourceTutorial},
						{Title: "Sorting Algorithm Implementations", URL: languageResourceURL(lang, "sorting-algorithms"), Type: model.ResourceDocumentation},
						{Title: "Visualizing Sorting Algorithms", URL: "https://www.youtube.com/watch?v=kPRA0W1kECg", Type: model.ResourceVideo},
						{Title: "Practice: Implement Sorting Algorithms", URL: languagePracticeURL(lang, "sorting"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Introduction to Trees",
					Description: "Learn about tree data structures and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Tree Data Structure", URL: "https://www.geeksforgeeks.org/introduction-to-tree-data-structure/", Type: model.ResourceTutorial},
						{Title: "Binary Tree Implementation", URL: languageResourceURL(lang, "binary-tree"), Type: model.ResourceDocumentation},
						{Title: "Tree Data Structures Explained", URL: "https://www.youtube.com/watch?v=oSWTXtMglKE", Type: model.ResourceVideo},
						{Title: "Practice: Tree Problems", URL: "https://leetcode.com/tag/tree/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Binary Search Trees",
					Description: "Learn about binary search trees and their operations.",
					Resources: []model.RoadmapResource{
						{Title: "Binary Search Tree", URL: "https://www.geeksforgeeks.org/binary-search-tree-data-structure/", Type: model.ResourceTutorial},
						{Title: "BST Implementation", URL: languageResourceURL(lang, "binary-search-tree"), Type: model.ResourceDocumentation},
						{Title: "Binary Search Trees Explained", URL: "https://www.youtube.com/watch?v=pYT9F8_LFTM", Type: model.ResourceVideo},
						{Title: "Practice: BST Problems", URL: "https://leetcode.com/tag/binary-search-tree/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Tree Traversals",
					Description: "Learn about different ways to traverse trees.",
					Resources: []model.RoadmapResource{
						{Title: "Tree Traversal Algorithms", URL: "https://www.geeksforgeeks.org/tree-traversals-inorder-preorder-and-postorder/", Type: model.ResourceTutorial},
						{Title: "Implementing Tree Traversals", URL: languageResourceURL(lang, "tree-traversal"), Type: model.ResourceDocumentation},
						{Title: "Tree Traversals Explained", URL: "https://www.youtube.com/watch?v=9RHO6jU--GU", Type: model.ResourceVideo},
						{Title: "Practice: Tree Traversal Problems", URL: "https://leetcode.com/tag/tree/", Type: model.ResourcePractice},
					},
				},
			},
		},
		{
			Week:  3,
			Title: "Intermediate Algorithms",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Merge Sort",
					Description: "Learn about the merge sort algorithm and its implementation.",
					Resources: []model.RoadmapResource{
						{Title: "Merge Sort Tutorial", URL: "https://www.geeksforgeeks.org/merge-sort/", Type: model.ResourceTutorial},
						{Title: "Merge Sort Implementation", URL: languageResourceURL(lang, "merge-sort"), Type: model.ResourceDocumentation},
						{Title: "Merge Sort Explained", URL: "https://www.youtube.com/watch?v=KF2j-9iSf4Q", Type: model.ResourceVideo},
						{Title: "Practice: Implement Merge Sort", URL: languagePracticeURL(lang, "merge-sort"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Quick Sort",
					Description: "Learn about the quick sort algorithm and its implementation.",
					Resources: []model.RoadmapResource{
						{Title: "Quick Sort Tutorial", URL: "https://www.geeksforgeeks.org/quick-sort/", Type: model.ResourceTutorial},
						{Title: "Quick Sort Implementation", URL: languageResourceURL(lang, "quick-sort"), Type: model.ResourceDocumentation},
						{Title: "Quick Sort Explained", URL: "https://www.youtube.com/watch?v=Hoixgm4-P4M", Type: model.ResourceVideo},
						{Title: "Practice: Implement Quick Sort", URL: languagePracticeURL(lang, "quick-sort"), Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Hash Tables",
					Description: "Learn about hash tables and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Hash Table Tutorial", URL: "https://www.geeksforgeeks.org/hashing-data-structure/", Type: model.ResourceTutorial},
						{Title: "Hash Table Implementation", URL: languageResourceURL(lang, "hash-table"), Type: model.ResourceDocumentation},
						{Title: "Hash Tables Explained", URL: "https://www.youtube.com/watch?v=shs0KM3wKv8", Type: model.ResourceVideo},
						{Title: "Practice: Hash Table Problems", URL: "https://leetcode.com/tag/hash-table/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Introduction to Graphs",
					Description: "Learn about graph data structures and their representations.",
					Resources: []model.RoadmapResource{
						{Title: "Graph Data Structure", URL: "https://www.geeksforgeeks.org/graph-data-structure-and-algorithms/", Type: model.ResourceTutorial},
						{Title: "Graph Representations", URL: "https://www.geeksforgeeks.org/graph-and-its-representations/", Type: model.ResourceDocumentation},
						{Title: "Graphs Explained", URL: "https://www.youtube.com/watch?v=gXgEDyodOJU", Type: model.ResourceVideo},
						{Title: "Practice: Graph Problems", URL: "https://leetcode.com/tag/graph/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Graph Traversals",
					Description: "Learn about breadth-first search (BFS) and depth-first search (DFS).",
					Resources: []model.RoadmapResource{
						{Title: "BFS and DFS Tutorial", URL: "https://www.geeksforgeeks.org/breadth-first-search-or-bfs-for-a-graph/", Type: model.ResourceTutorial},
						{Title: "Implementing Graph Traversals", URL: languageResourceURL(lang, "graph-traversal"), Type: model.ResourceDocumentation},
						{Title: "BFS and DFS Explained", URL: "https://www.youtube.com/watch?v=pcKY4hjDrxk", Type: model.ResourceVideo},
						{Title: "Practice: Graph Traversal Problems", URL: "https://leetcode.com/tag/depth-first-search/", Type: model.ResourcePractice},
					},
				},
			},
		},
		{
			Week:  4,
			Title: "Advanced Topics",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Introduction to Dynamic Programming",
					Description: "Learn about dynamic programming and its applications.",
					Resources: []model.RoadmapResource{
						{Title: "Dynamic Programming Tutorial", URL: "https://www.geeksforgeeks.org/dynamic-programming/", Type: model.ResourceTutorial},
						{Title: "DP Problem Patterns", URL: "https://leetcode.com/discuss/general-discussion/458695/dynamic-programming-patterns", Type: model.ResourceDocumentation},
						{Title: "Dynamic Programming Explained", URL: "https://www.youtube.com/watch?v=oBt53YbR9Kk", Type: model.ResourceVideo},
						{Title: "Practice: Simple DP Problems", URL: "https://leetcode.com/tag/dynamic-programming/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         2,
					Title:       "Greedy Algorithms",
					Description: "Learn about greedy algorithms and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Greedy Algorithms Tutorial", URL: "https://www.geeksforgeeks.org/greedy-algorithms/", Type: model.ResourceTutorial},
						{Title: "Greedy Algorithm Examples", URL: "https://www.geeksforgeeks.org/greedy-algorithms-examples/", Type: model.ResourceDocumentation},
						{Title: "Greedy Algorithms Explained", URL: "https://www.youtube.com/watch?v=HzeK7g8cD0Y", Type: model.ResourceVideo},
						{Title: "Practice: Greedy Algorithm Problems", URL: "https://leetcode.com/tag/greedy/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         3,
					Title:       "Divide and Conquer",
					Description: "Learn about divide and conquer algorithms.",
					Resources: []model.RoadmapResource{
						{Title: "Divide and Conquer Tutorial", URL: "https://www.geeksforgeeks.org/divide-and-conquer-algorithm-introduction/", Type: model.ResourceTutorial},
						{Title: "Divide and Conquer Examples", URL: "https://www.geeksforgeeks.org/divide-and-conquer/", Type: model.ResourceDocumentation},
						{Title: "Divide and Conquer Explained", URL: "https://www.youtube.com/watch?v=2Rr2tW9zvRg", Type: model.ResourceVideo},
						{Title: "Practice: Divide and Conquer Problems", URL: "https://leetcode.com/tag/divide-and-conquer/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         4,
					Title:       "Backtracking",
					Description: "Learn about backtracking algorithms and their applications.",
					Resources: []model.RoadmapResource{
						{Title: "Backtracking Tutorial", URL: "https://www.geeksforgeeks.org/backtracking-algorithms/", Type: model.ResourceTutorial},
						{Title: "Backtracking Examples", URL: "https://www.geeksforgeeks.org/backtracking-introduction/", Type: model.ResourceDocumentation},
						{Title: "Backtracking Explained", URL: "https://www.youtube.com/watch?v=DKCbsiDBN6c", Type: model.ResourceVideo},
						{Title: "Practice: Backtracking Problems", URL: "https://leetcode.com/tag/backtracking/", Type: model.ResourcePractice},
					},
				},
				{
					Day:         5,
					Title:       "Final Project",
					Description: "Apply what you've learned in a comprehensive project.",
					Resources: []model.RoadmapResource{
						{Title: "Data Structure Visualization", URL: "https://github.com/search?q=" + string(lang) + "+data+structure+visualization", Type: model.ResourceTutorial},
						{Title: "Project Ideas", URL: "https://github.com/karan/Projects", Type: model.ResourceDocumentation},
						{Title: "Building a Project", URL: languageVideoURL(lang, "dsa-project"), Type: model.ResourceVideo},
						{Title: "Pathfinding Visualizer", URL: "https://github.com/search?q=" + string(lang) + "+pathfinding+visualizer", Type: model.ResourceProject},
					},
				},
			},
		},
	}
}

func intermediateTemplate(lang model.Language) []model.RoadmapWeek {
	return []model.RoadmapWeek{
		{
			Week:  1,
			Title: "Advanced Data Structures",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Trees",
					Resources: []model.RoadmapResource{
						{Title: "Binary Trees and Binary Search Trees", URL: "https://www.geeksforgeeks.org/binary-tree-data-structure/", Type: model.ResourceTutorial},
						{Title: "Tree Traversal Algorithms", URL: "https://www.geeksforgeeks.org/tree-traversals-inorder-preorder-and-postorder/", Type: model.ResourceTutorial},
					},
				},
				{
					Day:         2,
					Title:       "Heaps",
					Resources: []model.RoadmapResource{
						{Title: "Binary Heap", URL: "https://www.geeksforgeeks.org/binary-heap/", Type: model.ResourceTutorial},
						{Title: "Priority Queue Implementation", URL: languageResourceURL(lang, "priority-queue"), Type: model.ResourceTutorial},
					},
				},
			},
		},
	}
}

func advancedTemplate(lang model.Language) []model.RoadmapWeek {
	return []model.RoadmapWeek{
		{
			Week:  1,
			Title: "Advanced Algorithms",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Advanced Graph Algorithms",
					Resources: []model.RoadmapResource{
						{Title: "Shortest Path Algorithms", URL: "https://www.geeksforgeeks.org/dijkstras-shortest-path-algorithm-greedy-algo-7/", Type: model.ResourceTutorial},
						{Title: "Minimum Spanning Tree", URL: "https://www.geeksforgeeks.org/kruskals-minimum-spanning-tree-algorithm-greedy-algo-2/", Type: model.ResourceTutorial},
					},
				},
				{
					Day:         2,
					Title:       "Advanced Dynamic Programming",
					Resources: []model.RoadmapResource{
						{Title: "DP Patterns and Techniques", URL: "https://leetcode.com/discuss/general-discussion/458695/dynamic-programming-patterns", Type: model.ResourceTutorial},
						{Title: "Practice: DP Problems", URL: "https://leetcode.com/tag/dynamic-programming/", Type: model.ResourcePractice},
					},
				},
			},
		},
	}
}

func expertTemplate(lang model.Language) []model.RoadmapWeek {
	return []model.RoadmapWeek{
		{
			Week:  1,
			Title: "Advanced Algorithm Techniques",
			Days: []model.RoadmapDay{
				{
					Day:         1,
					Title:       "Network Flow Algorithms",
					Resources: []model.RoadmapResource{
						{Title: "Maximum Flow - Ford-Fulkerson Algorithm", URL: "https://www.geeksforgeeks.org/ford-fulkerson-algorithm-for-maximum-flow-problem/", Type: model.ResourceTutorial},
						{Title: "Bipartite Matching", URL: "https://www.geeksforgeeks.org/maximum-bipartite-matching/", Type: model.ResourceTutorial},
					},
				},
				{
					Day:         2,
					Title:       "Advanced String Algorithms",
					Resources: []model.RoadmapResource{
						{Title: "Suffix Trees and Arrays", URL: "https://www.geeksforgeeks.org/suffix-tree-application-1-substring-check/", Type: model.ResourceTutorial},
						{Title: "Aho-Corasick Algorithm", URL: "https://www.geeksforgeeks.org/aho-corasick-algorithm-pattern-searching/", Type: model.ResourceTutorial},
					},
				},
			},
		},
	}
}
